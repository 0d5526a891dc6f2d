package xdg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("CHRONICLE_XDG_TEST", "set")
	assert.Equal(t, "set", GetEnvOrDefault("CHRONICLE_XDG_TEST", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefault("CHRONICLE_XDG_TEST_UNSET", "fallback"))
}

func TestXDGConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	assert.Equal(t, filepath.Join("/tmp/cfg", "chronicle", "config.yaml"), XDGConfigPath("chronicle", "config.yaml"))

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, filepath.Join("/home/someone", ".config", "chronicle", "config.yaml"), XDGConfigPath("chronicle", "config.yaml"))
}
