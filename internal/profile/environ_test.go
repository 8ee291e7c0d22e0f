package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	t.Run("adds profile entries", func(t *testing.T) {
		env := Compose(map[string]string{"PATH": "/bin"}, []Entry{{Key: "FOO", Value: "bar"}})
		assert.Equal(t, map[string]string{"PATH": "/bin", "FOO": "bar"}, env)
	})

	t.Run("profile wins", func(t *testing.T) {
		base := map[string]string{"FOO": "old"}
		env := Compose(base, []Entry{{Key: "FOO", Value: "new"}})
		assert.Equal(t, map[string]string{"FOO": "new"}, env)
		assert.Equal(t, "old", base["FOO"], "base must not be modified")
	})

	t.Run("empty profile", func(t *testing.T) {
		env := Compose(map[string]string{"A": "1"}, nil)
		assert.Equal(t, map[string]string{"A": "1"}, env)
	})
}

func TestEnvironMap(t *testing.T) {
	env := EnvironMap([]string{"PATH=/bin:/usr/bin", "EMPTY=", "EQ=a=b", "=C:=C:\\dir", "BARE", ""})
	assert.Equal(t, map[string]string{
		"PATH":  "/bin:/usr/bin",
		"EMPTY": "",
		"EQ":    "a=b",
		"=C:":   "C:\\dir",
		"BARE":  "",
	}, env)
}

func TestEnvironSorted(t *testing.T) {
	assert.Equal(t, []string{"A=1", "B=2"}, Environ(map[string]string{"B": "2", "A": "1"}))
}

func TestManagerEnvironment(t *testing.T) {
	m := NewManager(newMemStore(), testIdentity, nil)
	require.NoError(t, m.Add("dev", Entry{Key: "FOO", Value: "bar"}))

	env, err := m.Environment("dev", map[string]string{"PATH": "/bin", "FOO": "old"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PATH": "/bin", "FOO": "bar"}, env)
}
