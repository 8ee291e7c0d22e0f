package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the XDG-compliant config directory for keyenv
// Typically ~/.config/keyenv/ on Linux
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "keyenv")
}

// ConfigPath returns the full path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}

// DataDir returns the XDG-compliant data directory for keyenv
// Typically ~/.local/share/keyenv/ on Linux; holds the encrypted file store
func DataDir() string {
	return filepath.Join(xdg.DataHome, "keyenv")
}
