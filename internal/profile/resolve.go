package profile

import (
	"regexp"
	"strings"

	"github.com/semmy-space/keyenv/internal/prompt"
)

// Request is what a command received as arguments. Empty means not given.
type Request struct {
	Key   string
	Value string

	// KeyOnly requests just a key, as unset does.
	KeyOnly bool
}

// Outcome is either a resolved entry or the questions still needed to
// resolve one.
type Outcome struct {
	Entry     Entry
	Questions []prompt.Question

	keyOnly bool
}

// Resolved reports whether no prompting is needed.
func (o Outcome) Resolved() bool {
	return len(o.Questions) == 0
}

var assignment = regexp.MustCompile(`^\w+=`)

// Resolve decides what is still missing from req. Parts that are present
// and valid are kept; parts that are missing or invalid become questions
// whose default is whatever was supplied.
//
// A lone "KEY=VALUE" key argument is split on the first '='.
func Resolve(req Request) Outcome {
	key, value := req.Key, req.Value
	if !req.KeyOnly && value == "" && assignment.MatchString(key) {
		key, value, _ = strings.Cut(key, "=")
	}

	out := Outcome{Entry: Entry{Key: key, Value: value}, keyOnly: req.KeyOnly}

	if !IsValidKey(key) {
		out.Questions = append(out.Questions, prompt.Question{
			Name:     "key",
			Message:  "Key",
			Default:  key,
			Validate: ValidateKey,
		})
	}

	if !req.KeyOnly && ValidateValue(value) != nil {
		message := "Value"
		if IsValidKey(key) {
			message = "Value for " + key
		}
		out.Questions = append(out.Questions, prompt.Question{
			Name:     "value",
			Message:  message,
			Default:  value,
			Secret:   true,
			Validate: ValidateValue,
		})
	}

	return out
}

// Complete asks p for anything o still needs and validates the result
// again; a prompter is never trusted to have enforced the rules.
func Complete(o Outcome, p prompt.Prompter) (Entry, error) {
	entry := o.Entry

	if !o.Resolved() {
		answers, err := p.Ask(o.Questions)
		if err != nil {
			return Entry{}, wrapError(KindValidation, err, "could not resolve input")
		}
		if k, ok := answers["key"]; ok {
			entry.Key = k
		}
		if v, ok := answers["value"]; ok {
			entry.Value = v
		}
	}

	if err := ValidateKey(entry.Key); err != nil {
		return Entry{}, err
	}
	if !o.keyOnly {
		if err := ValidateValue(entry.Value); err != nil {
			return Entry{}, err
		}
	}

	return entry, nil
}
