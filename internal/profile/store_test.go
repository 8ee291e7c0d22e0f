package profile

import (
	"errors"

	"github.com/semmy-space/keyenv/internal/secrets"
)

// memStore is an in-memory secrets.Store that lists in insertion order and
// can be told to fail writes of particular accounts.
type memStore struct {
	services map[string][]secrets.Credential

	failSet map[string]error
	failGet error

	sets    []string
	deletes []string
}

func newMemStore() *memStore {
	return &memStore{
		services: make(map[string][]secrets.Credential),
		failSet:  make(map[string]error),
	}
}

func (s *memStore) index(service, account string) int {
	for i, c := range s.services[service] {
		if c.Account == account {
			return i
		}
	}
	return -1
}

func (s *memStore) Get(service, account string) (string, error) {
	if s.failGet != nil {
		return "", s.failGet
	}
	i := s.index(service, account)
	if i < 0 {
		return "", secrets.ErrNotFound
	}
	return s.services[service][i].Secret, nil
}

func (s *memStore) List(service string) ([]secrets.Credential, error) {
	if s.failGet != nil {
		return nil, s.failGet
	}
	return append([]secrets.Credential(nil), s.services[service]...), nil
}

func (s *memStore) Set(service, account, secret string) error {
	if err := s.failSet[account]; err != nil {
		return err
	}
	s.sets = append(s.sets, account)
	if i := s.index(service, account); i >= 0 {
		s.services[service][i].Secret = secret
		return nil
	}
	s.services[service] = append(s.services[service], secrets.Credential{Account: account, Secret: secret})
	return nil
}

func (s *memStore) Delete(service, account string) error {
	i := s.index(service, account)
	if i < 0 {
		return secrets.ErrNotFound
	}
	s.deletes = append(s.deletes, account)
	creds := s.services[service]
	s.services[service] = append(creds[:i], creds[i+1:]...)
	if len(s.services[service]) == 0 {
		delete(s.services, service)
	}
	return nil
}

var errBackend = errors.New("backend unavailable")
