package cli

import (
	"errors"
	"fmt"

	"github.com/semmy-space/keyenv/internal/logging"
	"github.com/semmy-space/keyenv/internal/output"
	"github.com/semmy-space/keyenv/internal/profile"
	"github.com/semmy-space/keyenv/internal/prompt"
)

// commandError converts a profile error into the CLIError main prints.
// Errors that already are CLIErrors pass through.
func commandError(err error, profileName string, log *logging.Logger) error {
	if err == nil {
		return nil
	}

	var cliErr *output.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var pe *profile.Error
	if !errors.As(err, &pe) {
		return output.NewCLIError(output.ExitGeneral, err.Error())
	}

	for k, v := range pe.Debug() {
		log.Debugf("%s: %s=%v", pe.Kind, k, v)
	}

	out := output.NewCLIError(output.ExitGeneral, pe.Error())
	switch pe.Kind {
	case profile.KindConflict:
		if key, ok := pe.Debug()["key"]; ok {
			out.WithHint(fmt.Sprintf("Run: keyenv unset %s %v first to replace it", profileName, key))
		}
	case profile.KindNotFound:
		out.WithHint(fmt.Sprintf("Run: keyenv list %s to see stored keys", profileName))
	case profile.KindEmptyInput:
		out.WithHint(fmt.Sprintf("Pipe KEY=VALUE lines in, e.g.: keyenv slurp %s < .env", profileName))
	case profile.KindValidation:
		if errors.Is(err, prompt.ErrNonInteractive) {
			out.WithHint("Pass the key and value as arguments, or run in a terminal without --no-input")
		}
	}
	return out
}
