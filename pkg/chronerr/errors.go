// pkg/chronerr/errors.go

package chronerr

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// Configuration errors are returned synchronously from construction and
// registration. Callers match them with errors.Is.
var (
	ErrInvalidColorSpec    = cerr.New("invalid color spec")
	ErrInvalidOptionsShape = cerr.New("invalid options shape")
	ErrUnknownOption       = cerr.New("unknown option")
	ErrUnknownType         = cerr.New("unknown log type")
	ErrInvalidTypeName     = cerr.New("invalid log type name")
)

const colorHelp = "use a named color (red, blueBright, bgGreen, bold), a hex string such as #ff0000, or a func(string) string"

// InvalidColorSpec reports a color setting that could not be resolved.
func InvalidColorSpec(format string, args ...interface{}) error {
	return cerr.WithHint(cerr.Wrapf(ErrInvalidColorSpec, format, args...), colorHelp)
}

// InvalidOptionsShape reports overrides that are not a key/value mapping
// or that hold a value of the wrong type.
func InvalidOptionsShape(format string, args ...interface{}) error {
	return cerr.WithHint(cerr.Wrapf(ErrInvalidOptionsShape, format, args...),
		"overrides must be a map or chronicle.Overrides")
}

// UnknownOption names exactly the offending keys. Valid keys only travel in
// the hint so they never leak into Error().
func UnknownOption(keys []string, valid []string) error {
	err := cerr.Wrapf(ErrUnknownOption, "unknown option(s) %s", strings.Join(keys, ", "))
	return cerr.WithHintf(err, "recognized options: %s", strings.Join(valid, ", "))
}

// UnknownType reports a lookup for a name that was never registered.
func UnknownType(name string) error {
	return cerr.WithHint(cerr.Wrapf(ErrUnknownType, "%q", name),
		"register it first with DefineType")
}

// InvalidTypeName reports a name that cannot double as a log file name.
func InvalidTypeName(name string, cause error) error {
	err := cerr.Wrapf(ErrInvalidTypeName, "%q", name)
	if cause != nil {
		err = cerr.WithDetail(err, cause.Error())
	}
	return cerr.WithHint(err, "type names must be printable ASCII without spaces or path separators")
}
