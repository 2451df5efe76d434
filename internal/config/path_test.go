package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LISTS_DIR", "/srv/lists")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain path untouched", "/tmp/list.json", "/tmp/list.json"},
		{"relative path untouched", "list.json", "list.json"},
		{"bare tilde", "~", home},
		{"tilde prefix", "~/lists/week.json", filepath.Join(home, "lists", "week.json")},
		{"env variable", "$LISTS_DIR/week.json", "/srv/lists/week.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestDir(t *testing.T) {
	t.Run("xdg config home wins", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/etc/xdg-test")
		dir, err := Dir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/etc/xdg-test", "aisle"), dir)
	})

	t.Run("falls back to home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		dir, err := Dir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "aisle"), dir)
	})
}
