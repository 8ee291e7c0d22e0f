package cli

import (
	"fmt"

	"github.com/semmy-space/keyenv/internal/logging"
	"github.com/semmy-space/keyenv/internal/output"
)

// DumpCmd prints every variable of a profile
type DumpCmd struct {
	Profile string `arg:"" help:"Profile to print"`
}

// Run executes the dump command. Lines go to stdout unformatted so the
// result can be sourced or redirected into a .env file.
func (cmd *DumpCmd) Run(mp *ManagerProvider, fp *FormatterProvider, streams *Streams, log *logging.Logger) error {
	log.Infof("profile: %s", cmd.Profile)
	log.Infof("command: dump")

	m, err := mp.Manager()
	if err != nil {
		return err
	}
	entries, err := m.Entries(cmd.Profile)
	if err != nil {
		return commandError(err, cmd.Profile, log)
	}

	if fp.Mode == "json" {
		vars := make(map[string]string, len(entries))
		for _, e := range entries {
			vars[e.Key] = e.Value
		}
		return fp.Formatter.Print(vars)
	}

	for _, e := range entries {
		fmt.Fprintf(streams.Out, "%s=%s\n", e.Key, e.Value)
	}
	return nil
}

// ListCmd shows the keys of a profile with their values masked
type ListCmd struct {
	Profile string `arg:"" help:"Profile to list"`
}

// Run executes the list command
func (cmd *ListCmd) Run(mp *ManagerProvider, fp *FormatterProvider, streams *Streams, log *logging.Logger) error {
	log.Infof("profile: %s", cmd.Profile)
	log.Infof("command: list")

	m, err := mp.Manager()
	if err != nil {
		return err
	}
	entries, err := m.Entries(cmd.Profile)
	if err != nil {
		return commandError(err, cmd.Profile, log)
	}

	type listItem struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	items := make([]listItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, listItem{Key: e.Key, Value: maskSecret(e.Value)})
	}

	if len(items) == 0 && fp.Mode != "json" {
		fmt.Fprintf(streams.Err, "No variables stored in profile %s\n", cmd.Profile)
		return nil
	}

	cols := []output.Column{
		{Name: "Key", Key: "Key"},
		{Name: "Value", Key: "Value"},
	}

	return fp.Formatter.PrintList(items, cols)
}

// maskSecret masks sensitive values, showing only last 4 characters
func maskSecret(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
