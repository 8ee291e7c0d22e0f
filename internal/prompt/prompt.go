// Package prompt asks the user ordered questions with defaults and
// validators, either on a terminal or, when no terminal is available, by
// accepting the defaults as answers.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// Question is one value to ask for.
type Question struct {
	Name    string
	Message string
	Default string

	// Secret masks the typed answer.
	Secret bool

	// Validate rejects an answer; nil accepts anything.
	Validate func(string) error
}

// Prompter answers a list of questions, returning answers keyed by question name.
type Prompter interface {
	Ask(questions []Question) (map[string]string, error)
}

// ErrNonInteractive is returned when a question cannot be answered without a terminal.
var ErrNonInteractive = errors.New("input required but no terminal is available")

// New returns a terminal prompter when stdin and stderr are terminals and
// interactive is true, and a NonInteractive prompter otherwise.
func New(interactive bool) Prompter {
	if interactive && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd())) {
		return &Terminal{In: os.Stdin, Out: os.Stderr}
	}
	return NonInteractive{}
}

// Terminal prompts on a terminal using promptui. Prompts are written to
// Out so that stdout stays reserved for command output.
type Terminal struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

func (t *Terminal) Ask(questions []Question) (map[string]string, error) {
	answers := make(map[string]string, len(questions))

	for _, q := range questions {
		p := promptui.Prompt{
			Label:     q.Message,
			Default:   q.Default,
			AllowEdit: q.Default != "",
			Stdin:     t.In,
			Stdout:    t.Out,
		}
		if q.Secret {
			p.Mask = '*'
		}
		if q.Validate != nil {
			p.Validate = promptui.ValidateFunc(q.Validate)
		}

		answer, err := p.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil, fmt.Errorf("prompt cancelled")
			}
			return nil, fmt.Errorf("prompt %s: %w", q.Name, err)
		}
		answers[q.Name] = answer
	}

	return answers, nil
}

// NonInteractive answers every question with its default, failing on the
// first default that does not validate.
type NonInteractive struct{}

func (NonInteractive) Ask(questions []Question) (map[string]string, error) {
	answers := make(map[string]string, len(questions))

	for _, q := range questions {
		if q.Validate != nil {
			if err := q.Validate(q.Default); err != nil {
				return nil, fmt.Errorf("%s: %w (%v)", q.Name, ErrNonInteractive, err)
			}
		}
		answers[q.Name] = q.Default
	}

	return answers, nil
}
