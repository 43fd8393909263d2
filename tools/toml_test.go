package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("Name = \"wallet\"\n"), 0o600))

	var out struct{ Name string }
	require.NoError(t, DecodeToml(path, &out))
	require.Equal(t, "wallet", out.Name)
}

func TestDecodeTomlMissingFile(t *testing.T) {
	var out struct{}
	err := DecodeToml(filepath.Join(t.TempDir(), "nope.toml"), &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}
