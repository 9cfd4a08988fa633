package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandFetcher shells out to an external download tool that writes the
// body to stdout.
type CommandFetcher struct {
	name string
	path string
	args func(url string) []string
}

func newCommandFetcher(name string, args func(url string) []string) (*CommandFetcher, error) {
	path, err := lookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH", ErrNoClient, name)
	}

	return &CommandFetcher{name: name, path: path, args: args}, nil
}

func (f *CommandFetcher) Name() string {
	return f.name
}

func (f *CommandFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, f.path, f.args(url)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("failed to fetch %s with %s: %w: %s", url, f.name, err, msg)
		}
		return nil, fmt.Errorf("failed to fetch %s with %s: %w", url, f.name, err)
	}

	return stdout.Bytes(), nil
}
