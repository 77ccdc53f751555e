package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Nil(t, cfg.Seed)
	require.Empty(t, cfg.Rules)
	require.Equal(t, SQLiteConfig{Table: DefaultTable, Column: DefaultColumn}, cfg.SQLiteSource())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passmut.yaml")
	data := `
seed: 42
rules: [substitute, capitalizeall]
sqlite:
  table: leaks
  where: "id > 1"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	require.Equal(t, int64(42), *cfg.Seed)
	require.Equal(t, []string{"substitute", "capitalizeall"}, cfg.Rules)
	require.Equal(t, SQLiteConfig{Table: "leaks", Column: DefaultColumn, Where: "id > 1"}, cfg.SQLiteSource())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [unterminated"), 0o600))
	_, err = Load(path)
	require.ErrorContains(t, err, "parse config")
}
