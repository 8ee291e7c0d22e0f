package profile

import (
	"errors"
	"strings"

	"github.com/semmy-space/keyenv/internal/logging"
	"github.com/semmy-space/keyenv/internal/runner"
	"github.com/semmy-space/keyenv/internal/secrets"
)

// Manager runs profile operations against a store on behalf of one identity.
//
// Checks and writes are separate backend calls and no lock is held between
// them, so a concurrent writer can slip in after a successful check.
type Manager struct {
	store secrets.Store
	id    Identity
	log   *logging.Logger
}

// NewManager returns a Manager for id backed by store.
func NewManager(store secrets.Store, id Identity, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{store: store, id: id, log: log}
}

// Vault returns the store scoped to profile.
func (m *Manager) Vault(profile string) *Vault {
	ns := m.id.Namespace(profile)
	m.log.Debugf("profile %q -> namespace %q", profile, ns)
	return NewVault(m.store, ns)
}

// Entries lists the variables of profile. An empty or unknown profile has
// no entries and is not an error.
func (m *Manager) Entries(profile string) ([]Entry, error) {
	return m.Vault(profile).List()
}

// Add stores a new variable, failing with ConflictError if it exists.
func (m *Manager) Add(profile string, e Entry) error {
	if err := ValidateKey(e.Key); err != nil {
		return err
	}
	if err := ValidateValue(e.Value); err != nil {
		return err
	}

	v := m.Vault(profile)
	if err := AssertAbsent(v, []string{e.Key}); err != nil {
		return err
	}
	return v.Set(e.Key, e.Value)
}

// Remove deletes a variable, failing with NotFoundError if it is absent.
func (m *Manager) Remove(profile, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	v := m.Vault(profile)
	if err := AssertPresent(v, key); err != nil {
		return err
	}
	return v.Delete(key)
}

// Slurp adds a batch of variables. Every key is checked before anything is
// written, so one existing key aborts the whole batch. Writes then run one
// at a time and report is called after each. A failed write does not stop
// the batch or undo earlier writes; Slurp returns a BackendError naming the
// keys that failed.
func (m *Manager) Slurp(profile string, entries []Entry, report func(Entry, error)) error {
	if len(entries) == 0 {
		return newError(KindEmptyInput, "no variables to add")
	}

	keys := make([]string, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if err := ValidateKey(e.Key); err != nil {
			return err
		}
		if err := ValidateValue(e.Value); err != nil {
			return newError(KindValidation, "value of %s must not be empty", e.Key)
		}
		if seen[e.Key] {
			return newError(KindValidation, "%s appears more than once", e.Key)
		}
		seen[e.Key] = true
		keys[i] = e.Key
	}

	v := m.Vault(profile)
	if err := AssertAbsent(v, keys); err != nil {
		return err
	}

	var failed []string
	for _, e := range entries {
		err := v.Set(e.Key, e.Value)
		if err != nil {
			failed = append(failed, e.Key)
		}
		if report != nil {
			report(e, err)
		}
	}

	if len(failed) > 0 {
		return newError(KindBackend, "failed to write %d of %d keys (%s); earlier writes were kept",
			len(failed), len(entries), strings.Join(failed, ", ")).WithDebug("failed", failed)
	}
	return nil
}

// Environment returns base overlaid with the variables of profile.
func (m *Manager) Environment(profile string, base map[string]string) (map[string]string, error) {
	entries, err := m.Entries(profile)
	if err != nil {
		return nil, err
	}
	m.log.Debugf("overlaying %d variables from profile %q", len(entries), profile)
	return Compose(base, entries), nil
}

// Exec runs argv with base overlaid by the variables of profile and returns
// the child's exit code. A child that cannot be started is a SpawnError.
func (m *Manager) Exec(profile string, argv []string, base map[string]string, stdio runner.Stdio) (int, error) {
	if len(argv) == 0 {
		return -1, newError(KindValidation, "missing command to run")
	}

	env, err := m.Environment(profile, base)
	if err != nil {
		return -1, err
	}

	m.log.Debugf("exec %s", argv[0])
	code, err := runner.Run(argv[0], argv[1:], Environ(env), stdio)
	if err != nil {
		var startErr *runner.StartError
		if errors.As(err, &startErr) {
			return -1, wrapError(KindSpawn, startErr.Err, "failed to start %s", argv[0])
		}
		return -1, wrapError(KindSpawn, err, "%s did not finish", argv[0])
	}
	return code, nil
}
