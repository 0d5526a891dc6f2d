// pkg/config/config.go
//
// Loads Chronicle options from a config file, the environment and command
// line flags, in increasing order of precedence.

package config

import (
	"sort"
	"strings"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronicle"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	AppName   = "chronicle"
	EnvPrefix = "CHRONICLE"
)

// File mirrors the config file layout.
type File struct {
	LogToFileByDefault bool                `mapstructure:"logToFileByDefault" yaml:"logToFileByDefault"`
	LogTimestamp       bool                `mapstructure:"logTimestamp" yaml:"logTimestamp"`
	Path               string              `mapstructure:"path" yaml:"path"`
	Prefix             string              `mapstructure:"prefix" yaml:"prefix"`
	Suffix             string              `mapstructure:"suffix" yaml:"suffix"`
	AdditionalLogs     map[string]string   `mapstructure:"additionalLogs" yaml:"additionalLogs,omitempty"`
	SystemLogs         map[string]string   `mapstructure:"systemLogs" yaml:"systemLogs,omitempty"`
	Types              map[string]TypeSpec `mapstructure:"types" yaml:"types,omitempty"`
}

// TypeSpec defines a log type together with its overrides.
type TypeSpec struct {
	Color     string         `mapstructure:"color" yaml:"color"`
	Overrides map[string]any `mapstructure:"overrides" yaml:"overrides,omitempty"`
}

// DefaultPath is the config file looked up when none is given.
func DefaultPath() string {
	return xdg.XDGConfigPath(AppName, "config.yaml")
}

// NewViper returns a viper instance with defaults and environment lookup.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(chronicle.KeyLogToFileByDefault, false)
	v.SetDefault(chronicle.KeyLogTimestamp, false)
	v.SetDefault(chronicle.KeyPath, chronicle.DefaultPath)
	v.SetDefault(chronicle.KeyPrefix, "")
	v.SetDefault(chronicle.KeySuffix, "")
	SetViperEnvPrefix(v, EnvPrefix)
	return v
}

// SetViperEnvPrefix lets viper read env with prefix.
func SetViperEnvPrefix(v *viper.Viper, prefix string) {
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
}

// BindFlags binds every flag in flags to v. keys renames flags whose name
// differs from the option key.
func BindFlags(flags *pflag.FlagSet, v *viper.Viper, keys map[string]string) error {
	var result error
	flags.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k, ok := keys[f.Name]; ok {
			key = k
		}
		if err := v.BindPFlag(key, f); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result
}

// Load reads path when set and decodes everything viper knows into a File.
func Load(v *viper.Viper, path string) (File, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return File{}, cerr.Wrapf(err, "read config %s", path)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, cerr.Wrap(err, "decode config")
	}
	if path != "" {
		restoreTypeNames(&f, path)
	}
	for name, spec := range f.Types {
		spec.Overrides = canonicalKeys(spec.Overrides)
		f.Types[name] = spec
	}
	return f, nil
}

// typeSections holds the sections keyed by type name. viper folds map keys
// to lower case, and type names become file names, so these are re-read
// from the file as written.
type typeSections struct {
	AdditionalLogs map[string]string   `yaml:"additionalLogs"`
	SystemLogs     map[string]string   `yaml:"systemLogs"`
	Types          map[string]TypeSpec `yaml:"types"`
}

func restoreTypeNames(f *File, path string) {
	log := logger.L().Named("config")

	data, err := afero.ReadFile(afero.NewOsFs(), path)
	if err == nil {
		var s typeSections
		if err = yaml.Unmarshal(data, &s); err == nil {
			if s.AdditionalLogs != nil {
				f.AdditionalLogs = s.AdditionalLogs
			}
			if s.SystemLogs != nil {
				f.SystemLogs = s.SystemLogs
			}
			if s.Types != nil {
				f.Types = s.Types
			}
			return
		}
	}

	for _, name := range foldedNames(*f) {
		log.Warn("Type name lower-cased by config loader",
			zap.String("path", path),
			zap.String("type", name),
			zap.Error(err))
	}
}

// foldedNames lists type names that may have lost their original case.
func foldedNames(f File) []string {
	var names []string
	for name := range f.AdditionalLogs {
		names = append(names, name)
	}
	for name := range f.SystemLogs {
		names = append(names, name)
	}
	for name := range f.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// canonicalKeys restores option key casing that viper folds to lower case.
// Unrecognised keys are kept so registration can report them.
func canonicalKeys(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, val := range in {
		key, _ := chronicle.CanonicalOptionKey(k)
		out[key] = val
	}
	return out
}

// Options converts f into construction options. base supplies the
// collaborators (filesystem, writer, clock, root).
func (f File) Options(base chronicle.Options) chronicle.Options {
	base.LogToFileByDefault = f.LogToFileByDefault
	base.LogTimestamp = f.LogTimestamp
	base.Path = f.Path
	base.Prefix = f.Prefix
	base.Suffix = f.Suffix
	base.AdditionalLogs = toAny(f.AdditionalLogs)
	base.SystemLogs = toAny(f.SystemLogs)
	return base
}

func toAny(in map[string]string) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Build constructs a Chronicle from f and registers its extra types.
func Build(f File, base chronicle.Options) (*chronicle.Chronicle, error) {
	c, err := chronicle.New(f.Options(base))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(f.Types))
	for name := range f.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := f.Types[name]
		var overrides any
		if spec.Overrides != nil {
			overrides = spec.Overrides
		}
		if err := c.DefineType(name, spec.Color, overrides); err != nil {
			return nil, cerr.Wrapf(err, "config type %q", name)
		}
	}
	return c, nil
}
