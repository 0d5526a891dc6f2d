// pkg/chronerr/wrap.go

package chronerr

import (
	cerr "github.com/cockroachdb/errors"
)

// WrapWriteError annotates a failed log file write with its target.
func WrapWriteError(err error, target string) error {
	if err == nil {
		return nil
	}
	return cerr.WithHint(cerr.Wrapf(err, "write %s", target), "check that the log directory is writable")
}

// IsConfigError reports whether err comes from construction or registration
// validation rather than I/O.
func IsConfigError(err error) bool {
	return cerr.IsAny(err,
		ErrInvalidColorSpec,
		ErrInvalidOptionsShape,
		ErrUnknownOption,
		ErrUnknownType,
		ErrInvalidTypeName,
	)
}

// Hints flattens every hint attached along the chain.
func Hints(err error) string {
	return cerr.FlattenHints(err)
}
