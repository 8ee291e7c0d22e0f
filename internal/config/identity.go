package config

import (
	"errors"
	"os"
	"os/user"
	"strings"
)

// Username returns the login name of the current user, without any
// Windows domain prefix.
func Username() (string, error) {
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	if name == "" {
		name = os.Getenv("USER")
	}
	if name == "" {
		name = os.Getenv("USERNAME") // Windows fallback
	}
	if name == "" {
		return "", errors.New("cannot determine current user")
	}

	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return name, nil
}
