package chronicle

import (
	"testing"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronerr"
	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionKeys(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"logTimestamp", "logToFileByDefault", "path", "prefix", "suffix"}, OptionKeys())
}

func TestCanonicalOptionKey(t *testing.T) {
	t.Parallel()
	k, ok := CanonicalOptionKey("logtimestamp")
	assert.True(t, ok)
	assert.Equal(t, KeyLogTimestamp, k)

	k, ok = CanonicalOptionKey("colour")
	assert.False(t, ok)
	assert.Equal(t, "colour", k)
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		root, in, want string
	}{
		{"/project", "logs", "/project/logs/"},
		{"/project", "logs/", "/project/logs/"},
		{"/project", "logs///", "/project/logs/"},
		{"/project", "a/../b", "/project/b/"},
		{"/project", "/abs/dir", "/abs/dir/"},
		{"/project", "", "/project/"},
		{"/", "/", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.root, tt.in), tt.in)
	}
}

func TestParseOverridesNormalizesPath(t *testing.T) {
	t.Parallel()
	o, err := parseOverrides(map[string]any{"path": "nested/dir"}, "/project")
	require.NoError(t, err)
	require.NotNil(t, o.Path)
	assert.Equal(t, "/project/nested/dir/", *o.Path)

	src := &Overrides{Path: String("x")}
	o, err = parseOverrides(src, "/project")
	require.NoError(t, err)
	assert.Equal(t, "x", *src.Path, "caller's value is not mutated")
	assert.Equal(t, "/project/x/", *o.Path)

	o, err = parseOverrides(map[string]any{"path": ""}, "/project")
	require.NoError(t, err)
	assert.Equal(t, "", *o.Path)
}

func TestParseOverridesNil(t *testing.T) {
	t.Parallel()
	o, err := parseOverrides(nil, "/project")
	require.NoError(t, err)
	assert.Nil(t, o)

	o, err = parseOverrides(map[string]any{}, "/project")
	require.NoError(t, err)
	assert.Equal(t, &Overrides{}, o)
}

func TestParseOverridesStringMapBooleans(t *testing.T) {
	t.Parallel()
	o, err := parseOverrides(map[string]string{
		"logTimestamp":       "true",
		"logToFileByDefault": "false",
		"prefix":             "> ",
	}, "/project")
	require.NoError(t, err)
	require.NotNil(t, o.LogTimestamp)
	assert.True(t, *o.LogTimestamp)
	require.NotNil(t, o.LogToFileByDefault)
	assert.False(t, *o.LogToFileByDefault)
	assert.Equal(t, "> ", *o.Prefix)

	_, err = parseOverrides(map[string]string{"logTimestamp": "yes"}, "/project")
	assert.True(t, cerr.Is(err, chronerr.ErrInvalidOptionsShape))

	_, err = parseOverrides(map[string]any{"logTimestamp": "true"}, "/project")
	assert.True(t, cerr.Is(err, chronerr.ErrInvalidOptionsShape), "mixed maps stay strict")
}
