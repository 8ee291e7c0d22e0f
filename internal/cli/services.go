package cli

import (
	"fmt"
	"sync"

	"github.com/semmy-space/keyenv/internal/config"
	"github.com/semmy-space/keyenv/internal/output"
	"github.com/semmy-space/keyenv/internal/profile"
	"github.com/semmy-space/keyenv/internal/secrets"
)

// ManagerProvider lazily resolves the identity, opens the secrets store and
// builds the profile manager, so commands that never touch credentials
// need neither a user name nor a keyring.
type ManagerProvider struct {
	identity func() (profile.Identity, error)
	opts     secrets.Options
	open     func(secrets.Options) (secrets.Store, error)

	once    sync.Once
	manager *profile.Manager
	err     error
}

// NewManagerProvider creates a ManagerProvider using opts. identity is
// called once, on first use.
func NewManagerProvider(identity func() (profile.Identity, error), opts secrets.Options) *ManagerProvider {
	return &ManagerProvider{identity: identity, opts: opts, open: secrets.NewStore}
}

// currentIdentity returns the identity of the invoking user under the
// package name configured in cfg.
func currentIdentity(cfg *config.Config) func() (profile.Identity, error) {
	return func() (profile.Identity, error) {
		username, err := config.Username()
		if err != nil {
			return profile.Identity{}, err
		}
		return profile.Identity{Username: username, PackageName: cfg.ResolvedPackageName()}, nil
	}
}

// Manager returns the profile manager, opening the store on first call.
func (mp *ManagerProvider) Manager() (*profile.Manager, error) {
	mp.once.Do(func() {
		id, err := mp.identity()
		if err != nil {
			mp.err = &output.CLIError{
				ExitCode: output.ExitGeneral,
				Message:  fmt.Sprintf("Failed to determine the current user: %v", err),
			}
			return
		}

		store, err := mp.open(mp.opts)
		if err != nil {
			mp.err = &output.CLIError{
				ExitCode: output.ExitGeneral,
				Message:  fmt.Sprintf("Failed to initialize secrets store: %v", err),
				Hint:     "Pick another backend with --backend or: keyenv config set backend file",
			}
			return
		}

		mp.manager = profile.NewManager(store, id, mp.opts.Log)
	})
	return mp.manager, mp.err
}
