// pkg/xdg/xdg.go

package xdg

import (
	"os"
	"path/filepath"
)

func GetEnvOrDefault(envVar, fallback string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return fallback
}

func XDGConfigPath(app, file string) string {
	base := GetEnvOrDefault("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config"))
	return filepath.Join(base, app, file)
}
