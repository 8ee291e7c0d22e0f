package secrets

import "errors"

// Store is a vault of secrets addressed by a service (one profile namespace)
// and an account (one variable name within it). Each call is atomic on its
// own; nothing is transactional across calls.
type Store interface {
	Get(service, account string) (string, error)
	List(service string) ([]Credential, error)
	Set(service, account, secret string) error
	Delete(service, account string) error
}

// Credential is one account/secret pair returned by List.
type Credential struct {
	Account string
	Secret  string
}

// ErrNotFound is returned when an account is not present in a service
var ErrNotFound = errors.New("secret not found")

// AppName names the XDG directories and the default keyring service prefix
const AppName = "keyenv"
