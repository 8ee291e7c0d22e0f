package profile

import (
	"errors"

	"github.com/semmy-space/keyenv/internal/secrets"
)

// Entry is one stored variable.
type Entry struct {
	Key   string
	Value string
}

// Vault is a secrets.Store scoped to one namespace. It never retries;
// backend failures are returned as BackendError wrapping the backend's error.
type Vault struct {
	store     secrets.Store
	namespace string
}

// NewVault scopes store to namespace.
func NewVault(store secrets.Store, namespace string) *Vault {
	return &Vault{store: store, namespace: namespace}
}

// Namespace returns the service name this vault addresses.
func (v *Vault) Namespace() string {
	return v.namespace
}

// Get returns the value of key and whether it exists.
func (v *Vault) Get(key string) (string, bool, error) {
	value, err := v.store.Get(v.namespace, key)
	if err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return "", false, nil
		}
		return "", false, wrapError(KindBackend, err, "failed to read %s", key).WithDebug("namespace", v.namespace)
	}
	return value, true, nil
}

// List returns every entry in backend order.
func (v *Vault) List() ([]Entry, error) {
	creds, err := v.store.List(v.namespace)
	if err != nil {
		return nil, wrapError(KindBackend, err, "failed to list profile").WithDebug("namespace", v.namespace)
	}

	entries := make([]Entry, len(creds))
	for i, c := range creds {
		entries[i] = Entry{Key: c.Account, Value: c.Secret}
	}
	return entries, nil
}

// Set writes key unconditionally. Callers guard with AssertAbsent.
func (v *Vault) Set(key, value string) error {
	if err := v.store.Set(v.namespace, key, value); err != nil {
		return wrapError(KindBackend, err, "failed to write %s", key).WithDebug("namespace", v.namespace)
	}
	return nil
}

// Delete removes key. Callers guard with AssertPresent.
func (v *Vault) Delete(key string) error {
	if err := v.store.Delete(v.namespace, key); err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return newError(KindNotFound, "%s does not exist", key)
		}
		return wrapError(KindBackend, err, "failed to delete %s", key).WithDebug("namespace", v.namespace)
	}
	return nil
}
