package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/semmy-space/keyenv/internal/config"
	"github.com/semmy-space/keyenv/internal/logging"
	"github.com/semmy-space/keyenv/internal/output"
	"github.com/semmy-space/keyenv/internal/prompt"
	"github.com/willabides/kongplete"
)

// FormatterProvider wraps the formatter interface for Kong binding
type FormatterProvider struct {
	Formatter output.Formatter
	Mode      string
}

// CLI is the root command structure
type CLI struct {
	Globals

	Exec  ExecCmd  `cmd:"" help:"Run a command with a profile's variables in its environment"`
	Set   SetCmd   `cmd:"" aliases:"add" help:"Store a variable in a profile"`
	Unset UnsetCmd `cmd:"" aliases:"del,delete,remove,erase" help:"Remove a variable from a profile"`
	Dump  DumpCmd  `cmd:"" help:"Print a profile as KEY=VALUE lines"`
	Slurp SlurpCmd `cmd:"" help:"Store every KEY=VALUE line read from stdin"`
	List  ListCmd  `cmd:"" aliases:"ls" help:"List the variables of a profile with masked values"`

	Config      ConfigCmd                    `cmd:"" help:"Configuration commands"`
	Completions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
	Version     VersionCmd                   `cmd:"" help:"Show version information"`

	formatter *FormatterProvider `kong:"-"`
}

// AfterApply runs once flags are parsed and before the selected command.
// It loads config, resolves the output mode, and binds dependencies. The
// identity is only resolved once a command asks for the profile manager.
func (c *CLI) AfterApply(ctx *kong.Context) error {
	// Load config from XDG path (returns defaults if missing)
	cfg, err := config.Load()
	if err != nil {
		return output.NewCLIError(output.ExitGeneral, err.Error()).
			WithHint("Fix or remove " + config.ConfigPath())
	}

	log := logging.New(c.Verbose, c.Debug)
	streams := StdStreams()

	mode := c.ResolvedOutput(cfg)
	c.formatter = &FormatterProvider{
		Formatter: output.NewTo(mode, streams.Out, streams.Err),
		Mode:      mode,
	}

	ctx.Bind(cfg)
	ctx.Bind(c.formatter)
	ctx.Bind(&c.Globals)
	ctx.Bind(log)
	ctx.Bind(streams)
	ctx.Bind(NewManagerProvider(currentIdentity(cfg), c.StoreOptions(cfg, log)))
	ctx.BindTo(prompt.New(!c.NoInput), (*prompt.Prompter)(nil))

	return nil
}

// Formatter returns the formatter chosen for this run, or a plain one when
// parsing never got that far.
func (c *CLI) Formatter() output.Formatter {
	if c.formatter == nil {
		return output.New("plain")
	}
	return c.formatter.Formatter
}

// ConfigCmd holds configuration subcommands
type ConfigCmd struct {
	Get   ConfigGetCmd        `cmd:"" help:"Get a configuration value"`
	Set   ConfigSetCmd        `cmd:"" help:"Set a configuration value"`
	Unset ConfigUnsetCmd      `cmd:"" help:"Remove a configuration value"`
	List  ConfigListConfigCmd `cmd:"" name:"list" help:"List all configuration values"`
	Path  ConfigPathCmd       `cmd:"" help:"Show config file path"`
}

// VersionCmd shows version information
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context, streams *Streams) error {
	version := ctx.Model.Vars()["version"]
	fmt.Fprintf(streams.Out, "keyenv version %s\n", version)
	return nil
}
