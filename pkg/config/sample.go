/* pkg/config/sample.go */

package config

import (
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronicle"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Sample returns a starter config with the default system types and one
// example type carrying overrides.
func Sample() File {
	return File{
		Path: chronicle.DefaultPath,
		SystemLogs: map[string]string{
			"info":  "#007cae",
			"warn":  "#ae8f00",
			"error": "red",
		},
		AdditionalLogs: map[string]string{
			"question": "green",
		},
		Types: map[string]TypeSpec{
			"audit": {
				Color: "magentaBright",
				Overrides: map[string]any{
					chronicle.KeyLogToFileByDefault: true,
					chronicle.KeyLogTimestamp:       true,
					chronicle.KeyPath:               "logs/audit",
				},
			},
		},
	}
}

// WriteYAML marshals in and writes it to path on fs.
func WriteYAML(fs afero.Fs, log *zap.Logger, path string, in interface{}) error {
	log.Debug("Writing YAML file", zap.String("path", path))

	data, err := yaml.Marshal(in)
	if err != nil {
		return logger.LogErrAndWrap(log, "marshal YAML", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), xdg.DirPermStandard); err != nil {
		return logger.LogErrAndWrap(log, "create directory for "+path, err)
	}
	if err := afero.WriteFile(fs, path, data, xdg.FilePermStandard); err != nil {
		return logger.LogErrAndWrap(log, "write YAML file "+path, err)
	}

	log.Debug("YAML file written successfully", zap.String("path", path), zap.Int("size", len(data)))
	return nil
}

// WriteSample writes Sample to path, refusing to replace an existing file.
func WriteSample(fs afero.Fs, log *zap.Logger, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return cerr.Wrapf(err, "stat %s", path)
	}
	if exists {
		return cerr.WithHint(cerr.Newf("config file %s already exists", path), "remove it or choose another path")
	}
	return WriteYAML(fs, log, path, Sample())
}
