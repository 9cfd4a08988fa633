package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os/exec"
	"strconv"
	"time"
)

var ErrNoClient = errors.New("no network client available")

const (
	ClientHTTP = "http"
	ClientCurl = "curl"
	ClientWget = "wget"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
	Name() string
}

var lookPath = exec.LookPath

// New returns the fetcher for kind. curl and wget must be on PATH;
// otherwise the error wraps ErrNoClient.
func New(kind string, timeout time.Duration) (Fetcher, error) {
	switch kind {
	case "", ClientHTTP:
		return NewHTTPFetcher(&http.Client{Timeout: timeout}), nil
	case ClientCurl:
		return newCommandFetcher(ClientCurl, func(url string) []string {
			return []string{"-fsSL", "--max-time", seconds(timeout), url}
		})
	case ClientWget:
		return newCommandFetcher(ClientWget, func(url string) []string {
			return []string{"-q", "-T", seconds(timeout), "-O", "-", url}
		})
	default:
		return nil, fmt.Errorf("unknown client %q (want http, curl or wget)", kind)
	}
}

// seconds renders d as whole seconds for curl and wget, rounding up. Both
// tools read 0 as no limit, so a positive d never goes below 1.
func seconds(d time.Duration) string {
	if d <= 0 {
		return "0"
	}

	return strconv.FormatInt(int64(math.Ceil(d.Seconds())), 10)
}

type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Name() string {
	return ClientHTTP
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "kitinstall")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", url, err)
	}

	return data, nil
}
