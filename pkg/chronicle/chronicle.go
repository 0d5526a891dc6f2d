// pkg/chronicle/chronicle.go
//
// Package chronicle prints colourised, optionally timestamped messages to a
// console and mirrors them to per-type log files. Every log type carries a
// colour and an optional set of overrides layered over the global options.

package chronicle

import (
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/colour"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/logger"
	"github.com/charmbracelet/lipgloss"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Chronicle is a configured logger. It is safe to log from several
// goroutines; file writes for the same target are not ordered.
type Chronicle struct {
	global  GlobalConfig
	root    string
	reg     *registry
	colours *colour.Resolver

	fs    afero.Fs
	clock func() time.Time
	diag  *zap.Logger

	outMu sync.Mutex
	out   io.Writer
}

// New builds a Chronicle from opts, registering the system types and then
// the additional ones. Any invalid colour fails construction.
func New(opts Options) (*Chronicle, error) {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, cerr.Wrap(err, "resolve project root")
	}

	c := &Chronicle{
		global:  normalize(opts, root),
		root:    root,
		colours: opts.Colours,
		fs:      opts.Fs,
		clock:   opts.Clock,
		diag:    opts.Diagnostics,
		out:     opts.Stdout,
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.diag == nil {
		c.diag = logger.L().Named("chronicle")
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	c.reg = newRegistry(c.global)

	system := opts.SystemLogs
	if system == nil {
		system = DefaultSystemLogs()
	}
	for _, set := range []map[string]any{system, opts.AdditionalLogs} {
		for _, name := range sortedKeys(set) {
			if err := c.DefineType(name, set[name], nil); err != nil {
				return nil, err
			}
		}
	}

	c.diag.Debug("Chronicle initialized",
		zap.String("path", c.global.Path),
		zap.Bool("log_to_file_by_default", c.global.LogToFileByDefault),
		zap.Bool("log_timestamp", c.global.LogTimestamp),
		zap.Int("types", len(c.reg.types())),
	)
	return c, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefineType registers name with a colour setting and optional overrides.
// overrides may be nil, Overrides, *Overrides or a string-keyed map using
// the keys from OptionKeys. Re-registering a name replaces its colour and
// overrides but keeps its accessor. Nothing is applied on error.
func (c *Chronicle) DefineType(name string, colorSpec any, overrides any) error {
	if err := validateTypeName(name); err != nil {
		return err
	}

	fn, err := c.resolve(colorSpec)
	if err != nil {
		return cerr.Wrapf(err, "type %q", name)
	}

	o, err := parseOverrides(overrides, c.root)
	if err != nil {
		return err
	}

	created := c.reg.register(name, fn, o, func() *Accessor {
		return &Accessor{name: name, c: c}
	})
	c.diag.Debug("Log type registered", zap.String("type", name), zap.Bool("accessor_created", created))
	return nil
}

func (c *Chronicle) resolve(spec any) (colour.Fn, error) {
	if c.colours != nil {
		return c.colours.Resolve(spec)
	}
	return colour.Resolve(spec)
}

// Accessor returns the logging handle for name.
func (c *Chronicle) Accessor(name string) (*Accessor, bool) {
	return c.reg.accessor(name)
}

// ColorOf returns the resolved colour function for name.
func (c *Chronicle) ColorOf(name string) (colour.Fn, error) {
	return c.reg.colorOf(name)
}

// Effective returns the value of option key for type name, falling back to
// the global options when the type has no truthy override.
func (c *Chronicle) Effective(name, key string) (any, error) {
	return c.reg.effective(name, key)
}

// Global returns the normalized global options.
func (c *Chronicle) Global() GlobalConfig {
	return c.global
}

// Types lists the registered types in name order.
func (c *Chronicle) Types() []TypeInfo {
	return c.reg.types()
}

// LogFile returns the file that logs of type name are written to.
func (c *Chronicle) LogFile(name string) string {
	if name == DebugType && !c.reg.has(DebugType) {
		return c.global.Path + DebugType + ".log"
	}
	return c.reg.effectiveString(name, KeyPath) + name + ".log"
}

// Style returns a fresh lipgloss style for building custom colour settings.
func (c *Chronicle) Style() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Accessor logs under a single type.
type Accessor struct {
	name string
	c    *Chronicle
}

// Name returns the type this accessor logs under.
func (a *Accessor) Name() string { return a.name }

// Log writes content under the accessor's type.
func (a *Accessor) Log(content any, opts ...CallOption) *Completion {
	done, err := a.c.Log(a.name, content, opts...)
	if err != nil {
		return completed(err)
	}
	return done
}
