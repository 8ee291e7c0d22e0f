package cli

import (
	"fmt"
	"io"

	"github.com/semmy-space/keyenv/internal/logging"
	"github.com/semmy-space/keyenv/internal/output"
	"github.com/semmy-space/keyenv/internal/profile"
)

// SlurpCmd stores every variable read from stdin
type SlurpCmd struct {
	Profile string `arg:"" help:"Profile to add to"`
}

// Run executes the slurp command. Nothing is written unless every key is
// valid and new.
func (cmd *SlurpCmd) Run(mp *ManagerProvider, fp *FormatterProvider, streams *Streams, log *logging.Logger) error {
	log.Infof("profile: %s", cmd.Profile)
	log.Infof("command: slurp")

	if streams.InTerminal {
		return commandError(profile.NewError(profile.KindEmptyInput, "stdin is a terminal, nothing to read"), cmd.Profile, log)
	}

	data, err := io.ReadAll(streams.In)
	if err != nil {
		return output.NewCLIError(output.ExitGeneral, fmt.Sprintf("Failed to read stdin: %v", err))
	}

	entries, err := profile.ParseBulk(string(data))
	if err != nil {
		return commandError(err, cmd.Profile, log)
	}
	log.Debugf("parsed %d variables from stdin", len(entries))

	m, err := mp.Manager()
	if err != nil {
		return err
	}

	err = m.Slurp(cmd.Profile, entries, func(e profile.Entry, err error) {
		if err != nil {
			fp.Formatter.PrintError(fmt.Errorf("%s: %w", e.Key, err))
			return
		}
		fp.Formatter.PrintSuccess(e.Key + " set")
	})
	return commandError(err, cmd.Profile, log)
}
