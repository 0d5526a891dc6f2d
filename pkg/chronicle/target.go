// pkg/chronicle/target.go

package chronicle

import (
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronerr"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/xdg"
	"go.uber.org/zap"
)

const raceNotice = "If directories are being created, you can ignore this error"

// Completion signals the end of an asynchronous file write.
type Completion struct {
	done chan struct{}
	err  error
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

func completed(err error) *Completion {
	c := newCompletion()
	c.finish(err)
	return c
}

func (c *Completion) finish(err error) {
	c.err = err
	close(c.done)
}

// Done is closed once the write has finished.
func (c *Completion) Done() <-chan struct{} { return c.done }

// Wait blocks until the write has finished and returns its error.
func (c *Completion) Wait() error {
	<-c.done
	return c.err
}

// Err returns the write error, or nil while the write is still running.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// writeToFile prepares dir and the target file, then appends or replaces
// its content on a separate goroutine.
func (c *Chronicle) writeToFile(dir, typ, content string, overwrite bool) *Completion {
	target := dir + typ + ".log"
	done := newCompletion()

	go func() {
		c.ensureTarget(dir, target)
		err := c.write(target, content, overwrite)
		if err != nil {
			c.diag.Debug("Log file write failed", zap.String("target", target), zap.Error(err))
		}
		done.finish(err)
	}()
	return done
}

func (c *Chronicle) write(target, content string, overwrite bool) error {
	flag := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_APPEND
	}

	f, err := c.fs.OpenFile(target, flag, xdg.FilePermStandard)
	if err != nil {
		return chronerr.WrapWriteError(err, target)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return chronerr.WrapWriteError(err, target)
	}
	return chronerr.WrapWriteError(f.Close(), target)
}

// ensureTarget creates dir and an empty target file when they are missing.
// It is best effort: failures are reported and the write still goes ahead.
// The existence check and the creation are not atomic, so overlapping first
// writes to a new path may report a failure that the write itself survives.
func (c *Chronicle) ensureTarget(dir, target string) {
	if _, err := c.fs.Stat(dir); err != nil {
		if err := c.fs.MkdirAll(dir, xdg.DirPermStandard); err != nil {
			c.reportf("Failed to create configured directory for log files: %s (%s)", dir, raceNotice)
		}
	}

	if _, err := c.fs.Stat(target); err != nil {
		f, err := c.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, xdg.FilePermStandard)
		if err != nil {
			c.reportf("Failed to create log file: %s (%s)", target, raceNotice)
			return
		}
		_ = f.Close()
	}
}

// reportf prefers the registered error type and falls back to the
// diagnostic logger when it has been removed from the configuration.
func (c *Chronicle) reportf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.reg.has("error") {
		if _, err := c.Log("error", msg, WithFile(false)); err == nil {
			return
		}
	}
	c.diag.Warn(msg)
}
