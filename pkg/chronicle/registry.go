// pkg/chronicle/registry.go

package chronicle

import (
	"sort"
	"sync"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronerr"
	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/colour"
	"github.com/go-playground/validator/v10"
)

const typeNameRule = "required,printascii,excludesall=/\\ "

var validate = validator.New()

type typeEntry struct {
	name      string
	colorFn   colour.Fn
	overrides *Overrides
}

// registry owns every registered type and its accessor. The mutex only
// protects the maps; it never spans file I/O.
type registry struct {
	mu        sync.RWMutex
	global    GlobalConfig
	entries   map[string]*typeEntry
	accessors map[string]*Accessor
}

func newRegistry(global GlobalConfig) *registry {
	return &registry{
		global:    global,
		entries:   make(map[string]*typeEntry),
		accessors: make(map[string]*Accessor),
	}
}

func validateTypeName(name string) error {
	if err := validate.Var(name, typeNameRule); err != nil {
		return chronerr.InvalidTypeName(name, err)
	}
	return nil
}

// register stores or replaces the entry for name. newAccessor is only
// called when name has no accessor yet; created reports whether it was.
func (r *registry) register(name string, fn colour.Fn, overrides *Overrides, newAccessor func() *Accessor) (created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = &typeEntry{name: name, colorFn: fn, overrides: overrides}
	if _, ok := r.accessors[name]; ok {
		return false
	}
	r.accessors[name] = newAccessor()
	return true
}

func (r *registry) accessor(name string) (*Accessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accessors[name]
	return a, ok
}

func (r *registry) has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

func (r *registry) colorOf(name string) (colour.Fn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, chronerr.UnknownType(name)
	}
	return e.colorFn, nil
}

func (r *registry) overridesOf(name string) *Overrides {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[name]; ok {
		return e.overrides
	}
	return nil
}

// effective resolves key for name on every call: a present, non-falsy
// override wins, otherwise the global value applies.
func (r *registry) effective(name, key string) (any, error) {
	o := r.overridesOf(name)
	g := r.global

	switch key {
	case KeyLogToFileByDefault:
		return pickBool(o, func(o *Overrides) *bool { return o.LogToFileByDefault }, g.LogToFileByDefault), nil
	case KeyLogTimestamp:
		return pickBool(o, func(o *Overrides) *bool { return o.LogTimestamp }, g.LogTimestamp), nil
	case KeyPath:
		return pickString(o, func(o *Overrides) *string { return o.Path }, g.Path), nil
	case KeyPrefix:
		return pickString(o, func(o *Overrides) *string { return o.Prefix }, g.Prefix), nil
	case KeySuffix:
		return pickString(o, func(o *Overrides) *string { return o.Suffix }, g.Suffix), nil
	default:
		return nil, chronerr.UnknownOption([]string{key}, OptionKeys())
	}
}

func (r *registry) effectiveBool(name, key string) bool {
	v, _ := r.effective(name, key)
	b, _ := v.(bool)
	return b
}

func (r *registry) effectiveString(name, key string) string {
	v, _ := r.effective(name, key)
	s, _ := v.(string)
	return s
}

func pickBool(o *Overrides, field func(*Overrides) *bool, global bool) bool {
	if o != nil {
		if v := field(o); v != nil && *v {
			return true
		}
	}
	return global
}

func pickString(o *Overrides, field func(*Overrides) *string, global string) string {
	if o != nil {
		if v := field(o); v != nil && *v != "" {
			return *v
		}
	}
	return global
}

// TypeInfo describes one registered type.
type TypeInfo struct {
	Name      string     `yaml:"name"`
	Overrides *Overrides `yaml:"overrides,omitempty"`
}

func (r *registry) types() []TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TypeInfo, 0, len(r.entries))
	for name, e := range r.entries {
		out = append(out, TypeInfo{Name: name, Overrides: e.overrides.clone()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
