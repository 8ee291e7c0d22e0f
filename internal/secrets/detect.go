package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/semmy-space/keyenv/internal/logging"
)

// Backend names accepted by NewStore.
const (
	BackendAuto    = "auto"
	BackendKeyring = "keyring"
	BackendFile    = "file"
)

// Backends lists the valid backend names.
var Backends = []string{BackendAuto, BackendKeyring, BackendFile}

// Options selects and configures the store built by NewStore.
type Options struct {
	Backend string

	// Dir holds the encrypted file store, the keyring file backend and the
	// warning marker.
	Dir string

	// Password for the encrypted file store. Empty means a
	// machine-specific default.
	Password string

	Log *logging.Logger
}

// warningShown checks if the file-store warning has already been shown.
// Uses a marker file in the data directory to avoid repeating on every command.
func (o Options) warningShown() bool {
	_, err := os.Stat(o.markerPath())
	return err == nil
}

func (o Options) markerPath() string {
	return filepath.Join(o.Dir, ".file-store-warning-shown")
}

// warnOnce logs a warning, but only until markWarningsDone has run once.
func (o Options) warnOnce(msg string, args ...any) {
	if o.warningShown() {
		return
	}
	o.Log.Warnf(msg, args...)
}

// markWarningsDone persists the marker so future commands stay quiet.
func (o Options) markWarningsDone() {
	if !o.warningShown() {
		_ = os.MkdirAll(o.Dir, 0700)
		_ = os.WriteFile(o.markerPath(), []byte("1"), 0600)
	}
}

// NewStore creates a Store for the configured backend. "auto" tries the OS
// keyring first and falls back to the encrypted file when it is unavailable,
// and goes straight to the file on WSL and headless Linux.
func NewStore(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendKeyring:
		opts.Log.Debugf("using OS keyring backend")
		return NewKeyringStore(filepath.Join(opts.Dir, "keyring"))
	case BackendFile:
		return opts.fileStore()
	case BackendAuto, "":
	default:
		return nil, fmt.Errorf("unknown secrets backend %q (valid: %s)", opts.Backend, strings.Join(Backends, ", "))
	}

	// WSL and headless environments can't use keyring reliably
	if IsWSL() || IsHeadless() {
		opts.warnOnce("Detected WSL/headless environment, using encrypted file storage")
		store, err := opts.fileStore()
		if err != nil {
			return nil, err
		}
		opts.markWarningsDone()
		return store, nil
	}

	store, err := NewKeyringStore(filepath.Join(opts.Dir, "keyring"))
	if err != nil {
		opts.warnOnce("Keyring unavailable (%v), falling back to encrypted file", err)
		fstore, ferr := opts.fileStore()
		if ferr != nil {
			return nil, ferr
		}
		opts.markWarningsDone()
		return fstore, nil
	}

	opts.Log.Debugf("using OS keyring backend")
	return store, nil
}

func (o Options) fileStore() (*FileStore, error) {
	password := o.Password
	if password == "" {
		// Machine-specific default (less secure than user-provided password)
		hostname, _ := os.Hostname()
		username := os.Getenv("USER")
		if username == "" {
			username = os.Getenv("USERNAME") // Windows fallback
		}
		password = fmt.Sprintf("%s@%s", username, hostname)
		o.warnOnce("Using machine-specific encryption key. For better security, set KEYENV_STORE_PASSWORD.")
	}

	store, err := NewFileStore(filepath.Join(o.Dir, "credentials.enc"), password)
	if err != nil {
		return nil, err
	}
	o.Log.Debugf("using encrypted file backend at %s", store.Path())
	return store, nil
}

// IsWSL returns true if running under Windows Subsystem for Linux.
func IsWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}

	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

// IsHeadless returns true if running in a headless environment (no display server).
// Only applicable on Linux; macOS and Windows are assumed to have GUI.
func IsHeadless() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	return os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}
