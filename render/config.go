package render

import (
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // target width in fixed-width positions (“en”s)
	Indent    int            // indentation per nesting level
	Context   *uax11.Context // context for measuring character widths
	Palette   []*color.Color // colors by nesting level; cycled if too short
}

// DefaultLineWidth is used if the line width cannot be derived otherwise.
const DefaultLineWidth = 65

// DefaultPalette returns the default colors for nesting levels.
func DefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
		color.New(color.FgYellow),
	}
}

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Config.Context will be
// created based on heuristics from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{
		LineWidth: DefaultLineWidth,
		Indent:    2,
		Context:   uax11.ContextFromEnvironment(),
		Palette:   DefaultPalette(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	}
	tracer().P("render", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// normalized returns a copy of config with missing parameters filled in.
// A nil config results in a config from the terminal.
func normalized(config *Config) *Config {
	if config == nil {
		return ConfigFromTerminal()
	}
	c := *config
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.Indent < 0 {
		c.Indent = 0
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette()
	}
	return &c
}

func (c *Config) color(level int) *color.Color {
	return c.Palette[level%len(c.Palette)]
}

// --- Measuring text --------------------------------------------------------

var setupGraphemes sync.Once

func stringWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Width returns the number of fixed-width positions s occupies on a console.
func Width(s string, context *uax11.Context) int {
	if context == nil {
		context = uax11.LatinContext
	}
	return stringWidth(s, context)
}

// Shorten cuts s to at most width fixed-width positions, marking the cut with
// an ellipsis. Grapheme clusters are never split. Line breaks are displayed
// as '⏎'.
func Shorten(s string, width int, context *uax11.Context) string {
	if context == nil {
		context = uax11.LatinContext
	}
	s = strings.ReplaceAll(s, "\n", "⏎")
	if stringWidth(s, context) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := stringWidth(g, context)
		if w+gw > width-1 {
			break
		}
		b.WriteString(g)
		w += gw
	}
	b.WriteString("…")
	return b.String()
}
