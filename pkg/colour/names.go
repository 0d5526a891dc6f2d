// pkg/colour/names.go

package colour

import (
	"sort"

	"github.com/fatih/color"
)

// named maps chalk-style colour names onto terminal attributes.
var named = map[string][]color.Attribute{
	"black":   {color.FgBlack},
	"red":     {color.FgRed},
	"green":   {color.FgGreen},
	"yellow":  {color.FgYellow},
	"blue":    {color.FgBlue},
	"magenta": {color.FgMagenta},
	"cyan":    {color.FgCyan},
	"white":   {color.FgWhite},
	"gray":    {color.FgHiBlack},
	"grey":    {color.FgHiBlack},

	"blackBright":   {color.FgHiBlack},
	"redBright":     {color.FgHiRed},
	"greenBright":   {color.FgHiGreen},
	"yellowBright":  {color.FgHiYellow},
	"blueBright":    {color.FgHiBlue},
	"magentaBright": {color.FgHiMagenta},
	"cyanBright":    {color.FgHiCyan},
	"whiteBright":   {color.FgHiWhite},

	"bgBlack":   {color.BgBlack},
	"bgRed":     {color.BgRed},
	"bgGreen":   {color.BgGreen},
	"bgYellow":  {color.BgYellow},
	"bgBlue":    {color.BgBlue},
	"bgMagenta": {color.BgMagenta},
	"bgCyan":    {color.BgCyan},
	"bgWhite":   {color.BgWhite},
	"bgGray":    {color.BgHiBlack},
	"bgGrey":    {color.BgHiBlack},

	"bgBlackBright":   {color.BgHiBlack},
	"bgRedBright":     {color.BgHiRed},
	"bgGreenBright":   {color.BgHiGreen},
	"bgYellowBright":  {color.BgHiYellow},
	"bgBlueBright":    {color.BgHiBlue},
	"bgMagentaBright": {color.BgHiMagenta},
	"bgCyanBright":    {color.BgHiCyan},
	"bgWhiteBright":   {color.BgHiWhite},

	"reset":         {color.Reset},
	"bold":          {color.Bold},
	"dim":           {color.Faint},
	"italic":        {color.Italic},
	"underline":     {color.Underline},
	"inverse":       {color.ReverseVideo},
	"hidden":        {color.Concealed},
	"strikethrough": {color.CrossedOut},
}

// Names lists every recognised colour name in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for k := range named {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
