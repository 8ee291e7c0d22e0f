package cli

import (
	"os"

	"github.com/semmy-space/keyenv/internal/config"
	"github.com/semmy-space/keyenv/internal/logging"
	"github.com/semmy-space/keyenv/internal/secrets"
	"golang.org/x/term"
)

// StorePasswordEnv names the variable holding the encrypted file store password.
const StorePasswordEnv = "KEYENV_STORE_PASSWORD"

// Globals holds global flags available to all commands
type Globals struct {
	Output  string `help:"Output format" default:"auto" enum:"json,plain,rich,auto" short:"o" env:"KEYENV_OUTPUT"`
	Backend string `help:"Secrets backend" default:"" enum:"auto,keyring,file," env:"KEYENV_BACKEND"`
	NoInput bool   `help:"Disable interactive prompts (fail instead)" env:"KEYENV_NO_INPUT"`
	Verbose bool   `help:"Verbose output" short:"v" env:"KEYENV_VERBOSE"`
	Debug   bool   `help:"Debug output, implies --verbose" env:"KEYENV_DEBUG"`
}

// ResolvedOutput returns the effective output mode: flag, then config, then
// "auto", which picks rich when stdout is a TTY and plain otherwise.
func (g *Globals) ResolvedOutput(cfg *config.Config) string {
	mode := g.Output
	if (mode == "" || mode == "auto") && cfg != nil && cfg.DefaultOutput != "" {
		mode = cfg.DefaultOutput
	}
	if mode != "" && mode != "auto" {
		return mode
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "rich"
	}

	return "plain"
}

// ResolvedBackend returns the secrets backend: flag > config > auto.
func (g *Globals) ResolvedBackend(cfg *config.Config) string {
	if g.Backend != "" {
		return g.Backend
	}
	if cfg != nil && cfg.Backend != "" {
		return cfg.Backend
	}
	return secrets.BackendAuto
}

// StoreOptions builds the secrets store options for this run.
func (g *Globals) StoreOptions(cfg *config.Config, log *logging.Logger) secrets.Options {
	return secrets.Options{
		Backend:  g.ResolvedBackend(cfg),
		Dir:      cfg.ResolvedFileDir(),
		Password: os.Getenv(StorePasswordEnv),
		Log:      log,
	}
}
