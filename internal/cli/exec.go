package cli

import (
	"os"
	"strings"

	"github.com/semmy-space/keyenv/internal/logging"
	"github.com/semmy-space/keyenv/internal/output"
	"github.com/semmy-space/keyenv/internal/profile"
	"github.com/semmy-space/keyenv/internal/runner"
)

// ExecCmd runs a command with a profile's variables in its environment
type ExecCmd struct {
	Profile string   `arg:"" help:"Profile to load"`
	Command []string `arg:"" passthrough:"" help:"Command and arguments to run"`
}

// Run executes the exec command. The child's exit code becomes keyenv's.
func (cmd *ExecCmd) Run(mp *ManagerProvider, streams *Streams, log *logging.Logger) error {
	argv := cmd.argv()

	log.Infof("profile: %s", cmd.Profile)
	log.Infof("command: %s", strings.Join(argv, " "))

	m, err := mp.Manager()
	if err != nil {
		return err
	}

	code, err := m.Exec(cmd.Profile, argv, profile.EnvironMap(os.Environ()), runner.Stdio{
		In:  streams.In,
		Out: streams.Out,
		Err: streams.Err,
	})
	if err != nil {
		return commandError(err, cmd.Profile, log)
	}
	if code != output.ExitOK {
		// Nothing to print; the child has already spoken.
		return &output.CLIError{ExitCode: code}
	}
	return nil
}

// argv is the command to run without the optional "--" separator.
func (cmd *ExecCmd) argv() []string {
	if len(cmd.Command) > 0 && cmd.Command[0] == "--" {
		return cmd.Command[1:]
	}
	return cmd.Command
}
