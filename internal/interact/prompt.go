package interact

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/audiobatch/internal/config"
)

// Prompter asks questions on a line-oriented terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer. End of input is an
// empty answer.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskOrder asks for the merge order: 1 ascending, 2 descending, anything
// else ascending.
func (p *Prompter) AskOrder() (config.SortOrder, error) {
	answer, err := p.Ask("Sort order (1: ascending / 2: descending): ")
	if err != nil {
		return "", err
	}
	return config.ParseOrderChoice(answer), nil
}

// AskMode asks for the convert selection mode. ok is false when the answer
// is not one of the three choices.
func (p *Prompter) AskMode() (mode config.SelectMode, ok bool, err error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Choose conversion mode:")
	fmt.Fprintln(p.out, "1) Select a folder and convert all MP3 files in it")
	fmt.Fprintln(p.out, "2) Select multiple MP3 files")
	fmt.Fprintln(p.out, "3) Select one MP3 file")
	answer, err := p.Ask("Select (1/2/3): ")
	if err != nil {
		return "", false, err
	}
	mode, ok = config.ParseModeChoice(answer)
	return mode, ok, nil
}

// PromptPicker picks paths by asking on the terminal.
type PromptPicker struct {
	p *Prompter
}

// NewPromptPicker returns a picker sharing p's input.
func NewPromptPicker(p *Prompter) *PromptPicker {
	return &PromptPicker{p: p}
}

// PickFolder asks for one folder path; a blank answer cancels.
func (pp *PromptPicker) PickFolder(title string) (string, error) {
	answer, err := pp.p.Ask(title + " (blank to cancel): ")
	if err != nil {
		return "", err
	}
	return cleanPath(answer), nil
}

// PickFiles asks for one path, or for paths one per line until a blank
// line when multiple is set. The filter is only shown as a hint.
func (pp *PromptPicker) PickFiles(title string, filter Filter, multiple bool) ([]string, error) {
	hint := ""
	if len(filter.Exts) > 0 {
		hint = " [" + strings.Join(filter.Exts, ", ") + "]"
	}
	if !multiple {
		answer, err := pp.p.Ask(title + hint + " (blank to cancel): ")
		if err != nil || cleanPath(answer) == "" {
			return nil, err
		}
		return []string{cleanPath(answer)}, nil
	}

	fmt.Fprintln(pp.p.out, title+hint+", one per line; finish with a blank line:")
	var paths []string
	for {
		answer, err := pp.p.Ask("> ")
		if err != nil {
			return nil, err
		}
		path := cleanPath(answer)
		if path == "" {
			return paths, nil
		}
		paths = append(paths, path)
	}
}
