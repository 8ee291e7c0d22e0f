package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/semmy-space/keyenv/internal/config"
	"github.com/semmy-space/keyenv/internal/output"
)

func unknownKeyError(key string) *output.CLIError {
	return output.NewCLIError(output.ExitGeneral, fmt.Sprintf("Unknown config key: %s", key)).
		WithHint("Valid keys: " + strings.Join(config.Keys(), ", "))
}

// ConfigGetCmd implements config get command
type ConfigGetCmd struct {
	Key string `arg:"" help:"Config key to get (e.g., backend, package_name)"`
}

// Run executes the get command
func (cmd *ConfigGetCmd) Run(cfg *config.Config, streams *Streams) error {
	value, err := cfg.Get(cmd.Key)
	if err != nil {
		return unknownKeyError(cmd.Key)
	}

	fmt.Fprintln(streams.Out, value)
	return nil
}

// ConfigSetCmd implements config set command
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Config key to set"`
	Value string `arg:"" help:"Value to set"`
}

// Run executes the set command
func (cmd *ConfigSetCmd) Run(cfg *config.Config, streams *Streams) error {
	old, err := cfg.Get(cmd.Key)
	if err != nil {
		return unknownKeyError(cmd.Key)
	}

	if err := cfg.Set(cmd.Key, cmd.Value); err != nil {
		return output.NewCLIError(output.ExitGeneral, fmt.Sprintf("Failed to set config: %v", err))
	}

	if cmd.Key == "package_name" && old != cmd.Value {
		if old == "" {
			old = config.DefaultPackageName
		}
		fmt.Fprintf(streams.Err, "Note: profiles stored under package %q are no longer visible.\n", old)
	}

	fmt.Fprintf(streams.Err, "Set %s = %s\n", cmd.Key, cmd.Value)
	return nil
}

// ConfigUnsetCmd implements config unset command
type ConfigUnsetCmd struct {
	Key string `arg:"" help:"Config key to remove"`
}

// Run executes the unset command
func (cmd *ConfigUnsetCmd) Run(cfg *config.Config, streams *Streams) error {
	if _, err := cfg.Get(cmd.Key); err != nil {
		return unknownKeyError(cmd.Key)
	}

	if err := cfg.Unset(cmd.Key); err != nil {
		return output.NewCLIError(output.ExitGeneral, fmt.Sprintf("Failed to unset config: %v", err))
	}

	fmt.Fprintf(streams.Err, "Unset %s\n", cmd.Key)
	return nil
}

// ConfigListConfigCmd implements config list command
type ConfigListConfigCmd struct{}

// Run executes the list command
func (cmd *ConfigListConfigCmd) Run(cfg *config.Config, fp *FormatterProvider) error {
	type configItem struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	var items []configItem
	for _, key := range config.Keys() {
		value, _ := cfg.Get(key)
		items = append(items, configItem{Key: key, Value: value})
	}

	cols := []output.Column{
		{Name: "Key", Key: "Key"},
		{Name: "Value", Key: "Value"},
	}

	return fp.Formatter.PrintList(items, cols)
}

// ConfigPathCmd implements config path command
type ConfigPathCmd struct{}

// Run executes the path command
func (cmd *ConfigPathCmd) Run(cfg *config.Config, streams *Streams) error {
	path := cfg.Path()

	fmt.Fprintln(streams.Out, path)

	// Print existence hint to stderr
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(streams.Err, "(file does not exist yet - will be created on first write)\n")
	} else {
		fmt.Fprintf(streams.Err, "(file exists)\n")
	}

	return nil
}
