package secrets

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/crypto/scrypt"
)

const (
	fileMagic = "KEV1"
	saltSize  = 16
	keySize   = 32

	lockTimeout = 10 * time.Second
	lockRetry   = 100 * time.Millisecond
)

// FileStore implements the Store interface using an AES-256-GCM encrypted file.
// This is a fallback for environments where OS keyring is unavailable (WSL, headless, Docker).
//
// File layout: magic | salt | nonce | ciphertext. The plaintext is a JSON
// object of service -> account -> secret.
type FileStore struct {
	path     string
	password []byte

	// scrypt cost; lowered in tests
	costN int

	mu   sync.Mutex
	salt []byte
	key  []byte
}

// NewFileStore creates a file-backed credential store at path, encrypted
// with a key derived from password.
func NewFileStore(path, password string) (*FileStore, error) {
	if password == "" {
		return nil, errors.New("file store requires a password")
	}

	// Create parent directory with 0700 permissions
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}

	return &FileStore{
		path:     path,
		password: []byte(password),
		costN:    1 << 15,
	}, nil
}

// Path returns the location of the encrypted file.
func (s *FileStore) Path() string {
	return s.path
}

// deriveKey returns the AES key for salt, reusing the last derivation when
// the salt has not changed.
func (s *FileStore) deriveKey(salt []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil && bytes.Equal(s.salt, salt) {
		return s.key, nil
	}

	key, err := scrypt.Key(s.password, salt, s.costN, 8, 1, keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	s.salt = append([]byte(nil), salt...)
	s.key = key
	return key, nil
}

// newGCM builds the AEAD for key.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// encrypt seals plaintext under salt with a fresh random nonce.
func (s *FileStore) encrypt(salt, plaintext []byte) ([]byte, error) {
	key, err := s.deriveKey(salt)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, 0, len(fileMagic)+len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, fileMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, []byte(fileMagic)), nil
}

// decrypt opens data written by encrypt and returns the salt it used.
func (s *FileStore) decrypt(data []byte) (salt, plaintext []byte, err error) {
	if len(data) < len(fileMagic)+saltSize || string(data[:len(fileMagic)]) != fileMagic {
		return nil, nil, fmt.Errorf("unrecognised credentials file format")
	}
	data = data[len(fileMagic):]
	salt, data = data[:saltSize], data[saltSize:]

	key, err := s.deriveKey(salt)
	if err != nil {
		return nil, nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err = gcm.Open(nil, nonce, ciphertext, []byte(fileMagic))
	if err != nil {
		return nil, nil, fmt.Errorf("decryption failed (wrong password?): %w", err)
	}

	return salt, plaintext, nil
}

type vaultFile map[string]map[string]string

// readStore decrypts and parses the credential file.
// Returns an empty vault and a fresh salt if the file doesn't exist.
func (s *FileStore) readStore() (vaultFile, []byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	if len(data) == 0 {
		salt := make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
		}
		return make(vaultFile), salt, nil
	}

	salt, plaintext, err := s.decrypt(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decrypt credentials: %w", err)
	}

	var store vaultFile
	if err := json.Unmarshal(plaintext, &store); err != nil {
		return nil, nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	if store == nil {
		store = make(vaultFile)
	}

	return store, salt, nil
}

// writeStore encrypts and replaces the credential file.
func (s *FileStore) writeStore(store vaultFile, salt []byte) error {
	plaintext, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}

	ciphertext, err := s.encrypt(salt, plaintext)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, ciphertext, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}

	return nil
}

// withLock runs fn while holding the file lock, shared for reads and
// exclusive for writes.
func (s *FileStore) withLock(exclusive bool, fn func() error) error {
	lock := flock.New(s.path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	var locked bool
	var err error
	if exclusive {
		locked, err = lock.TryLockContext(ctx, lockRetry)
	} else {
		locked, err = lock.TryRLockContext(ctx, lockRetry)
	}
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock: timeout")
	}
	defer lock.Unlock()

	return fn()
}

// Get retrieves a secret from the encrypted file.
func (s *FileStore) Get(service, account string) (string, error) {
	var value string
	err := s.withLock(false, func() error {
		store, _, err := s.readStore()
		if err != nil {
			return err
		}

		v, ok := store[service][account]
		if !ok {
			return ErrNotFound
		}
		value = v
		return nil
	})
	return value, err
}

// List returns the accounts of a service sorted by name.
func (s *FileStore) List(service string) ([]Credential, error) {
	var creds []Credential
	err := s.withLock(false, func() error {
		store, _, err := s.readStore()
		if err != nil {
			return err
		}

		accounts := store[service]
		creds = make([]Credential, 0, len(accounts))
		for k, v := range accounts {
			creds = append(creds, Credential{Account: k, Secret: v})
		}
		sort.Slice(creds, func(i, j int) bool { return creds[i].Account < creds[j].Account })
		return nil
	})
	return creds, err
}

// Set stores a secret in the encrypted file.
func (s *FileStore) Set(service, account, secret string) error {
	return s.withLock(true, func() error {
		store, salt, err := s.readStore()
		if err != nil {
			return err
		}

		if store[service] == nil {
			store[service] = make(map[string]string)
		}
		store[service][account] = secret
		return s.writeStore(store, salt)
	})
}

// Delete removes a secret from the encrypted file. A service left without
// accounts is dropped entirely.
func (s *FileStore) Delete(service, account string) error {
	return s.withLock(true, func() error {
		store, salt, err := s.readStore()
		if err != nil {
			return err
		}

		if _, ok := store[service][account]; !ok {
			return ErrNotFound
		}

		delete(store[service], account)
		if len(store[service]) == 0 {
			delete(store, service)
		}
		return s.writeStore(store, salt)
	})
}
