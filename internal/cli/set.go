package cli

import (
	"github.com/semmy-space/keyenv/internal/logging"
	"github.com/semmy-space/keyenv/internal/profile"
	"github.com/semmy-space/keyenv/internal/prompt"
)

// SetCmd stores one variable in a profile
type SetCmd struct {
	Profile string `arg:"" help:"Profile to add to"`
	Key     string `arg:"" optional:"" help:"Variable name, or KEY=VALUE (prompted for when missing)"`
	Value   string `arg:"" optional:"" help:"Variable value (prompted for when missing)"`
}

// Run executes the set command
func (cmd *SetCmd) Run(mp *ManagerProvider, fp *FormatterProvider, p prompt.Prompter, log *logging.Logger) error {
	log.Infof("profile: %s", cmd.Profile)
	log.Infof("command: set")

	entry, err := profile.Complete(profile.Resolve(profile.Request{Key: cmd.Key, Value: cmd.Value}), p)
	if err != nil {
		return commandError(err, cmd.Profile, log)
	}

	m, err := mp.Manager()
	if err != nil {
		return err
	}
	if err := m.Add(cmd.Profile, entry); err != nil {
		return commandError(err, cmd.Profile, log)
	}

	fp.Formatter.PrintSuccess(entry.Key + " set")
	return nil
}

// UnsetCmd removes one variable from a profile
type UnsetCmd struct {
	Profile string `arg:"" help:"Profile to remove from"`
	Key     string `arg:"" optional:"" predictor:"key" help:"Variable name (prompted for when missing)"`
}

// Run executes the unset command
func (cmd *UnsetCmd) Run(mp *ManagerProvider, fp *FormatterProvider, p prompt.Prompter, log *logging.Logger) error {
	log.Infof("profile: %s", cmd.Profile)
	log.Infof("command: unset")

	entry, err := profile.Complete(profile.Resolve(profile.Request{Key: cmd.Key, KeyOnly: true}), p)
	if err != nil {
		return commandError(err, cmd.Profile, log)
	}

	m, err := mp.Manager()
	if err != nil {
		return err
	}
	if err := m.Remove(cmd.Profile, entry.Key); err != nil {
		return commandError(err, cmd.Profile, log)
	}

	fp.Formatter.PrintSuccess(entry.Key + " unset")
	return nil
}
