// pkg/chronicle/options.go

package chronicle

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/colour"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultPath is the log directory used when Options.Path is empty.
const DefaultPath = "logs/"

// Options configures a Chronicle. Every field is optional.
type Options struct {
	LogToFileByDefault bool   `mapstructure:"logToFileByDefault" yaml:"logToFileByDefault"`
	LogTimestamp       bool   `mapstructure:"logTimestamp" yaml:"logTimestamp"`
	Path               string `mapstructure:"path" yaml:"path"`
	Prefix             string `mapstructure:"prefix" yaml:"prefix"`
	Suffix             string `mapstructure:"suffix" yaml:"suffix"`

	// AdditionalLogs maps extra type names to colour settings. They are
	// registered after SystemLogs and win on collision.
	AdditionalLogs map[string]any `mapstructure:"additionalLogs" yaml:"additionalLogs,omitempty"`

	// SystemLogs replaces the built-in info/warn/error set when non-nil.
	// An empty non-nil map registers no system types.
	SystemLogs map[string]any `mapstructure:"systemLogs" yaml:"systemLogs,omitempty"`

	// Root anchors relative paths. Defaults to the working directory.
	Root string `mapstructure:"-" yaml:"-"`

	Fs          afero.Fs         `mapstructure:"-" yaml:"-"`
	Stdout      io.Writer        `mapstructure:"-" yaml:"-"`
	Clock       func() time.Time `mapstructure:"-" yaml:"-"`
	Diagnostics *zap.Logger      `mapstructure:"-" yaml:"-"`
	Colours     *colour.Resolver `mapstructure:"-" yaml:"-"`
}

// DefaultSystemLogs returns the built-in system types and their colours.
func DefaultSystemLogs() map[string]any {
	return map[string]any{
		"info":  "#007cae", // indigo blue
		"warn":  "#ae8f00", // bright orange
		"error": "red",
	}
}

// GlobalConfig holds the process-wide defaults every type falls back to.
// It is built once by normalize and never mutated.
type GlobalConfig struct {
	LogToFileByDefault bool
	LogTimestamp       bool
	Path               string
	Prefix             string
	Suffix             string
}

func normalize(opts Options, root string) GlobalConfig {
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	return GlobalConfig{
		LogToFileByDefault: opts.LogToFileByDefault,
		LogTimestamp:       opts.LogTimestamp,
		Path:               normalizePath(root, path),
		Prefix:             opts.Prefix,
		Suffix:             opts.Suffix,
	}
}

// normalizePath anchors path at root and leaves exactly one trailing
// separator.
func normalizePath(root, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)
	if !strings.HasSuffix(path, string(os.PathSeparator)) {
		path += string(os.PathSeparator)
	}
	return path
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		return os.Getwd()
	}
	return filepath.Abs(root)
}
