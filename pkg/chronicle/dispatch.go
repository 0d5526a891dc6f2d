// pkg/chronicle/dispatch.go

package chronicle

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

// DebugType is the reserved type whose writes replace the file by default.
const DebugType = "debug"

// TimestampLayout renders the en-US local date and time.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type callOptions struct {
	toFile    *bool
	overwrite *bool
}

// CallOption adjusts a single log call.
type CallOption func(*callOptions)

// WithFile forces file logging on or off for one call.
func WithFile(v bool) CallOption {
	return func(o *callOptions) { o.toFile = &v }
}

// WithOverwrite replaces the log file instead of appending to it.
func WithOverwrite(v bool) CallOption {
	return func(o *callOptions) { o.overwrite = &v }
}

func collect(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func stamp(t time.Time) string {
	return "[" + t.Format(TimestampLayout) + "]"
}

// Log prints content under typ and, when file logging applies, starts an
// asynchronous file write. The console line is written before Log returns.
func (c *Chronicle) Log(typ string, content any, opts ...CallOption) (*Completion, error) {
	fn, err := c.reg.colorOf(typ)
	if err != nil {
		return nil, err
	}

	call := collect(opts)
	toFile := c.reg.effectiveBool(typ, KeyLogToFileByDefault)
	if call.toFile != nil {
		toFile = *call.toFile
	}
	overwrite := typ == DebugType
	if call.overwrite != nil {
		overwrite = *call.overwrite
	}

	timestamp := stamp(c.clock())
	prefix := c.reg.effectiveString(typ, KeyPrefix)
	if c.reg.effectiveBool(typ, KeyLogTimestamp) {
		prefix += timestamp + " "
	}
	suffix := c.reg.effectiveString(typ, KeySuffix)
	if prefix != "" {
		prefix = fn(prefix)
	}
	if suffix != "" {
		suffix = fn(suffix)
	}
	text := fmt.Sprint(content)

	c.println(prefix + fn(text) + suffix)

	if !toFile {
		return completed(nil), nil
	}
	dir := c.reg.effectiveString(typ, KeyPath)
	return c.writeToFile(dir, typ, timestamp+" "+text+"\n", overwrite), nil
}

// Debug dumps content to the console without colour. With WithFile(true)
// it also writes content as indented JSON to debug.log, replacing the file
// unless WithOverwrite(false) is given.
func (c *Chronicle) Debug(content any, opts ...CallOption) *Completion {
	call := collect(opts)
	toFile := call.toFile != nil && *call.toFile
	overwrite := call.overwrite == nil || *call.overwrite

	c.outMu.Lock()
	dumper.Fdump(c.out, content)
	c.outMu.Unlock()

	if !toFile {
		return completed(nil)
	}

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		c.diag.Warn("Failed to serialize debug content", zap.Error(err))
		return completed(err)
	}
	return c.writeToFile(c.global.Path, DebugType, string(data), overwrite)
}

func (c *Chronicle) println(line string) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	if _, err := io.WriteString(c.out, line+"\n"); err != nil {
		c.diag.Warn("Failed to write console output", zap.Error(err))
	}
}
