package profile

import (
	"sort"
	"strings"
)

// Compose returns base overlaid with entries. Entries win on collision and
// base is not modified.
func Compose(base map[string]string, entries []Entry) map[string]string {
	env := make(map[string]string, len(base)+len(entries))
	for k, v := range base {
		env[k] = v
	}
	for _, e := range entries {
		env[e.Key] = e.Value
	}
	return env
}

// EnvironMap converts os.Environ style "KEY=VALUE" strings to a map.
func EnvironMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if kv == "" {
			continue
		}
		// Windows keeps per-drive variables like "=C:=C:\dir"
		i := strings.Index(kv[1:], "=")
		if i < 0 {
			env[kv] = ""
			continue
		}
		env[kv[:i+1]] = kv[i+2:]
	}
	return env
}

// Environ converts env back to "KEY=VALUE" strings, sorted by key.
func Environ(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
