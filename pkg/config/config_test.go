package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronerr"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronicle"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/logger"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func baseOptions() chronicle.Options {
	return chronicle.Options{
		Root:        "/project",
		Fs:          afero.NewMemMapFs(),
		Stdout:      &bytes.Buffer{},
		Diagnostics: zap.NewNop(),
	}
}

func TestSampleRoundTripBuildsChronicle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chronicle", "config.yaml")
	require.NoError(t, WriteSample(afero.NewOsFs(), zap.NewNop(), path))

	f, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "logs/", f.Path)
	assert.Equal(t, "red", f.SystemLogs["error"])
	require.Contains(t, f.Types, "audit")
	assert.Equal(t, true, f.Types["audit"].Overrides[chronicle.KeyLogToFileByDefault])

	c, err := Build(f, baseOptions())
	require.NoError(t, err)

	_, ok := c.Accessor("question")
	assert.True(t, ok)
	p, err := c.Effective("audit", chronicle.KeyPath)
	require.NoError(t, err)
	assert.Equal(t, "/project/logs/audit/", p)
	ts, _ := c.Effective("audit", chronicle.KeyLogTimestamp)
	assert.Equal(t, true, ts)
}

func TestWriteSampleRefusesToOverwrite(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteSample(fs, zap.NewNop(), "/etc/chronicle/config.yaml"))
	assert.Error(t, WriteSample(fs, zap.NewNop(), "/etc/chronicle/config.yaml"))
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	f, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, chronicle.DefaultPath, f.Path)
	assert.False(t, f.LogTimestamp)
	assert.Nil(t, f.SystemLogs)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("CHRONICLE_PREFIX", ">> ")
	t.Setenv("CHRONICLE_LOGTIMESTAMP", "true")

	f, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, ">> ", f.Prefix)
	assert.True(t, f.LogTimestamp)
}

func TestBindFlags(t *testing.T) {
	t.Parallel()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("timestamp", false, "")
	flags.String("suffix", "", "")
	require.NoError(t, flags.Parse([]string{"--timestamp", "--suffix", " <<"}))

	v := NewViper()
	require.NoError(t, BindFlags(flags, v, map[string]string{"timestamp": chronicle.KeyLogTimestamp}))

	f, err := Load(v, "")
	require.NoError(t, err)
	assert.True(t, f.LogTimestamp)
	assert.Equal(t, " <<", f.Suffix)
}

func TestBuildReportsUnknownOverride(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
types:
  broken:
    color: red
    overrides:
      invalidKey: true
`), 0o644))

	f, err := Load(NewViper(), path)
	require.NoError(t, err)

	_, err = Build(f, baseOptions())
	require.Error(t, err)
	assert.True(t, cerr.Is(err, chronerr.ErrUnknownOption))
	assert.Contains(t, err.Error(), "invalidKey")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteYAMLLogsAndWrapsFailures(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := WriteYAML(fs, zap.New(core), "/etc/chronicle/config.yaml", Sample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create directory for /etc/chronicle/config.yaml")

	errs := logs.FilterLevelExact(zapcore.ErrorLevel)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, "create directory for /etc/chronicle/config.yaml", errs.All()[0].Message)
}

func TestLoadKeepsTypeNameCase(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
additionalLogs:
  myExtra: green
types:
  myType:
    color: red
    overrides:
      logToFileByDefault: true
`), 0o644))

	f, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Contains(t, f.AdditionalLogs, "myExtra")
	require.Contains(t, f.Types, "myType")
	assert.Equal(t, true, f.Types["myType"].Overrides[chronicle.KeyLogToFileByDefault])

	c, err := Build(f, baseOptions())
	require.NoError(t, err)
	_, ok := c.Accessor("myType")
	assert.True(t, ok)
	assert.Equal(t, "/project/logs/myType.log", c.LogFile("myType"))
}

func TestLoadWarnsWhenTypeNamesAreFolded(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetLogger(zap.New(core))
	t.Cleanup(func() { logger.SetLogger(nil) })

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[types.myType]
color = "red"
`), 0o644))

	f, err := Load(NewViper(), path)
	require.NoError(t, err)
	require.Contains(t, f.Types, "mytype")

	warns := logs.FilterMessage("Type name lower-cased by config loader")
	require.Equal(t, 1, warns.Len())
	assert.Equal(t, "mytype", warns.All()[0].ContextMap()["type"])
}
