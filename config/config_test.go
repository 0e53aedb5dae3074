// File: config/config_test.go
// Author: momentics <momentics@gmail.com>

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-buf/config"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	props, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), props)
	assert.Equal(t, "127.0.0.1:7070", props.Addr)
	assert.Equal(t, 16*1024, props.ReadChunk)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: 0.0.0.0:9000\nreadChunk: 8192\n"), 0o644))

	props, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", props.Addr)
	assert.Equal(t, 8192, props.ReadChunk)
	assert.Equal(t, "info", props.LogLevel, "unset keys keep defaults")
}

func TestLoadRejectsBadReadChunk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("readChunk: -1\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
