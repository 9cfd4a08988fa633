package conflict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"kitinstall/internal/model"
	"kitinstall/internal/ui"
)

// ConsolePrompter asks questions on out and reads line answers from in.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: bufio.NewReader(in), out: out}
}

// Ask re-prompts until it gets a recognised answer. End of input means no.
func (p *ConsolePrompter) Ask(path string) (model.Answer, error) {
	for {
		fmt.Fprint(p.out, ui.Prompt("%s already exists. Overwrite? [y]es/[n]o/[a]ll/[s]kip all: ", path))

		line, eof, err := p.readLine()
		if err != nil {
			return "", err
		}

		if answer, ok := ParseAnswer(line); ok {
			return answer, nil
		}

		if eof {
			fmt.Fprintln(p.out)
			return model.AnswerNo, nil
		}

		ui.Warning("Please answer y, n, a or s.")
	}
}

// Confirm asks a y/N question. Only y or yes counts as agreement.
func (p *ConsolePrompter) Confirm(question string) (bool, error) {
	fmt.Fprint(p.out, ui.Prompt("%s (y/N): ", question))

	line, eof, err := p.readLine()
	if err != nil {
		return false, err
	}
	if eof && line == "" {
		fmt.Fprintln(p.out)
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *ConsolePrompter) readLine() (string, bool, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(line), true, nil
		}
		return "", false, err
	}

	return strings.TrimSpace(line), false, nil
}

func ParseAnswer(s string) (model.Answer, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return model.AnswerYes, true
	case "n", "no":
		return model.AnswerNo, true
	case "a", "all":
		return model.AnswerAll, true
	case "s", "skip", "skip-all", "skip all":
		return model.AnswerSkipAll, true
	default:
		return "", false
	}
}
