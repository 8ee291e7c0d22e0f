package secrets

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"sync"

	"github.com/99designs/keyring"
)

// KeyringStore implements Store on top of the OS keyring. Every service is
// opened as its own keyring so that listing one profile never sees another.
type KeyringStore struct {
	dir      string
	backends []keyring.BackendType

	mu    sync.Mutex
	rings map[string]keyring.Keyring
	open  func(keyring.Config) (keyring.Keyring, error)
}

// NewKeyringStore creates a keyring-backed store. dir holds the keyring
// library's own file backend when it is the only one available.
// Returns an error if no keyring backend exists on this platform.
func NewKeyringStore(dir string) (*KeyringStore, error) {
	backends := keyring.AvailableBackends()
	if len(backends) == 0 {
		return nil, errors.New("no keyring backend available")
	}

	return &KeyringStore{
		dir:      dir,
		backends: backends,
		rings:    make(map[string]keyring.Keyring),
		open:     keyring.Open,
	}, nil
}

func (s *KeyringStore) ring(service string) (keyring.Keyring, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.rings[service]; ok {
		return r, nil
	}

	r, err := s.open(keyring.Config{
		ServiceName:              service,
		AllowedBackends:          s.backends,
		KeychainTrustApplication: true, // macOS: don't prompt every access
		FileDir:                  filepath.Join(s.dir, url.PathEscape(service)),
		FilePasswordFunc:         keyring.TerminalPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring %q: %w", service, err)
	}

	s.rings[service] = r
	return r, nil
}

// Get retrieves a secret from the keyring.
func (s *KeyringStore) Get(service, account string) (string, error) {
	r, err := s.ring(service)
	if err != nil {
		return "", err
	}

	item, err := r.Get(account)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("keyring get failed: %w", err)
	}
	return string(item.Data), nil
}

// List returns every account of a service with its secret, in the order the
// keyring reports them.
func (s *KeyringStore) List(service string) ([]Credential, error) {
	r, err := s.ring(service)
	if err != nil {
		return nil, err
	}

	keys, err := r.Keys()
	if err != nil {
		return nil, fmt.Errorf("keyring list failed: %w", err)
	}

	creds := make([]Credential, 0, len(keys))
	for _, k := range keys {
		item, err := r.Get(k)
		if err != nil {
			// removed between Keys and Get
			if errors.Is(err, keyring.ErrKeyNotFound) {
				continue
			}
			return nil, fmt.Errorf("keyring get failed: %w", err)
		}
		creds = append(creds, Credential{Account: k, Secret: string(item.Data)})
	}

	return creds, nil
}

// Set stores a secret in the keyring.
func (s *KeyringStore) Set(service, account, secret string) error {
	r, err := s.ring(service)
	if err != nil {
		return err
	}

	item := keyring.Item{
		Key:   account,
		Data:  []byte(secret),
		Label: service + " " + account,
	}
	if err := r.Set(item); err != nil {
		return fmt.Errorf("keyring set failed: %w", err)
	}
	return nil
}

// Delete removes a secret from the keyring.
func (s *KeyringStore) Delete(service, account string) error {
	r, err := s.ring(service)
	if err != nil {
		return err
	}

	if err := r.Remove(account); err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("keyring delete failed: %w", err)
	}
	return nil
}
