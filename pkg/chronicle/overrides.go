// pkg/chronicle/overrides.go

package chronicle

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronerr"
	"github.com/go-viper/mapstructure/v2"
)

// Recognised option keys for per-type overrides.
const (
	KeyLogToFileByDefault = "logToFileByDefault"
	KeyLogTimestamp       = "logTimestamp"
	KeyPath               = "path"
	KeyPrefix             = "prefix"
	KeySuffix             = "suffix"
)

var optionKeys = []string{KeyLogToFileByDefault, KeyLogTimestamp, KeyPath, KeyPrefix, KeySuffix}

// OptionKeys lists the recognised override keys in sorted order.
func OptionKeys() []string {
	out := append([]string(nil), optionKeys...)
	sort.Strings(out)
	return out
}

// CanonicalOptionKey returns the recognised key matching k case-insensitively.
func CanonicalOptionKey(k string) (string, bool) {
	for _, known := range optionKeys {
		if strings.EqualFold(known, k) {
			return known, true
		}
	}
	return k, false
}

func isOptionKey(k string) bool {
	for _, known := range optionKeys {
		if known == k {
			return true
		}
	}
	return false
}

// Overrides is a partial GlobalConfig. Nil fields fall back to the global value.
type Overrides struct {
	LogToFileByDefault *bool   `mapstructure:"logToFileByDefault" yaml:"logToFileByDefault,omitempty"`
	LogTimestamp       *bool   `mapstructure:"logTimestamp" yaml:"logTimestamp,omitempty"`
	Path               *string `mapstructure:"path" yaml:"path,omitempty"`
	Prefix             *string `mapstructure:"prefix" yaml:"prefix,omitempty"`
	Suffix             *string `mapstructure:"suffix" yaml:"suffix,omitempty"`
}

// Bool and String build override fields inline.
func Bool(v bool) *bool       { return &v }
func String(v string) *string { return &v }

func (o *Overrides) clone() *Overrides {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

// parseOverrides accepts nil, Overrides, *Overrides or a string-keyed map.
func parseOverrides(raw any, root string) (*Overrides, error) {
	var out *Overrides

	switch v := raw.(type) {
	case nil:
		return nil, nil
	case Overrides:
		out = v.clone()
	case *Overrides:
		if v == nil {
			return nil, nil
		}
		out = v.clone()
	default:
		m, err := toStringMap(raw)
		if err != nil {
			return nil, err
		}
		if out, err = decodeOverrides(m, stringValued(raw)); err != nil {
			return nil, err
		}
	}

	if out.Path != nil && *out.Path != "" {
		p := normalizePath(root, *out.Path)
		out.Path = &p
	}
	return out, nil
}

func toStringMap(raw any) (map[string]any, error) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Map {
		return nil, chronerr.InvalidOptionsShape("got %T, want a key/value mapping", raw)
	}

	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		if key.Kind() == reflect.Interface {
			key = key.Elem()
		}
		if !key.IsValid() || key.Kind() != reflect.String {
			return nil, chronerr.InvalidOptionsShape("map key %v is not a string", iter.Key())
		}
		m[key.String()] = iter.Value().Interface()
	}
	return m, nil
}

// stringValued reports whether raw is a map whose values are all strings,
// such as map[string]string. Those are decoded with weak typing so boolean
// options can be given as "true" or "false".
func stringValued(raw any) bool {
	t := reflect.TypeOf(raw)
	return t != nil && t.Kind() == reflect.Map && t.Elem().Kind() == reflect.String
}

func decodeOverrides(m map[string]any, weak bool) (*Overrides, error) {
	var unknown []string
	for k := range m {
		if !isOptionKey(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, chronerr.UnknownOption(unknown, OptionKeys())
	}

	out := &Overrides{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: weak,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("build overrides decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, chronerr.InvalidOptionsShape("%v", err)
	}
	return out, nil
}
