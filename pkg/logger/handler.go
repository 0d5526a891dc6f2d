package logger

import (
	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// LogErrAndWrap logs err at error level and returns it wrapped with msg.
func LogErrAndWrap(log *zap.Logger, msg string, err error) error {
	log.Error(msg, zap.Error(err))
	return cerr.Wrap(err, msg)
}
