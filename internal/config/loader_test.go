package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultConfigWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	logger := zerolog.Nop()

	cfg, resolved, err := Load(&logger, path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config should be written")
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":7000\"\nroom_capacity: 50\nshutdown_timeout: 2s\ndefault_room: lobby\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("STARBOARD_ROOM_CAPACITY", "75")

	cfg, _, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, 75, cfg.RoomCapacity, "env overrides file")
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "lobby", cfg.DefaultRoom)
	assert.Equal(t, Default().MaxBodyBytes, cfg.MaxBodyBytes)

	cfg.UpdateFrom(Config{Addr: ":9000"})
	assert.Equal(t, ":9000", cfg.Addr, "caller overrides env and file")
	assert.Equal(t, 75, cfg.RoomCapacity)
}

func TestLoadRejectsInvalidCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("room_capacity: 0\n"), 0o600))

	_, _, err := Load(nil, path)
	assert.Error(t, err)
}

func TestLoadUsesDefaultPathEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envConfigDefaultPath, dir)

	_, resolved, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, defaultConfigName), resolved)
}
