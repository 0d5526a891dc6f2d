// pkg/colour/colour.go
//
// Colour resolution for log types. A setting is a colour name, a hex
// string, a formatting function, or a prebuilt style; every setting
// resolves to an Fn that is probed once before it is handed back.

package colour

import (
	"fmt"
	"strings"

	"github.com/CodeMonkeyCybersecurity/chronicle/pkg/chronerr"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Fn decorates a string for terminal output.
type Fn func(string) string

// Resolver turns colour settings into Fn values for one terminal profile.
type Resolver struct {
	profile termenv.Profile
}

// NewResolver returns a Resolver rendering hex colours in the given profile.
func NewResolver(profile termenv.Profile) *Resolver {
	return &Resolver{profile: profile}
}

var std = NewResolver(termenv.EnvColorProfile())

// Resolve resolves spec using the profile detected from the environment.
func Resolve(spec any) (Fn, error) {
	return std.Resolve(spec)
}

// Resolve converts spec into a validated Fn.
func (r *Resolver) Resolve(spec any) (Fn, error) {
	var fn Fn

	switch s := spec.(type) {
	case string:
		var err error
		if strings.HasPrefix(s, "#") {
			fn, err = r.hex(s)
		} else {
			fn, err = fromName(s)
		}
		if err != nil {
			return nil, err
		}
	case Fn:
		fn = s
	case func(string) string:
		fn = s
	case func(...interface{}) string:
		if s != nil {
			fn = func(text string) string { return s(text) }
		}
	case *color.Color:
		if s != nil {
			fn = func(text string) string { return s.Sprint(text) }
		}
	case lipgloss.Style:
		fn = func(text string) string { return s.Render(text) }
	default:
		return nil, chronerr.InvalidColorSpec("unsupported setting of type %T", spec)
	}

	if fn == nil {
		return nil, chronerr.InvalidColorSpec("nil colour function")
	}
	if err := probe(fn); err != nil {
		return nil, err
	}
	return fn, nil
}

func fromName(name string) (Fn, error) {
	attrs, ok := named[name]
	if !ok {
		return nil, chronerr.InvalidColorSpec("unknown colour name %q", name)
	}
	c := color.New(attrs...)
	return func(text string) string { return c.Sprint(text) }, nil
}

const hexDigits = "0123456789abcdefABCDEF"

func (r *Resolver) hex(value string) (Fn, error) {
	if (len(value) != 4 && len(value) != 7) || strings.Trim(value[1:], hexDigits) != "" {
		return nil, chronerr.InvalidColorSpec("malformed hex colour %q", value)
	}
	parsed, err := colorful.Hex(value)
	if err != nil {
		return nil, chronerr.InvalidColorSpec("malformed hex colour %q: %v", value, err)
	}

	profile := r.profile
	fg := profile.Color(parsed.Hex())
	return func(text string) string {
		return profile.String(text).Foreground(fg).String()
	}, nil
}

// probe applies fn to the empty string; a panic fails resolution.
func probe(fn Fn) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = chronerr.InvalidColorSpec("colour function failed on probe: %v", fmt.Sprint(rec))
		}
	}()
	_ = fn("")
	return nil
}
