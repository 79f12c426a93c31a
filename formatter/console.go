package formatter

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Part is a visual part of a chart.
type Part int

// Parts of a chart which may be colored.
const (
	Label Part = iota
	Bar
	Hit
	Axis
)

// ConsoleFixedWidth is a type for outputting interval charts to a console with
// a fixed width font.
//
// Bars are drawn by repeating BarRune, highlighted bars by repeating HitRune.
// Both have to be runes of display width 1. Colors are switched off if
// color.NoColor is set, which fatih/color does by default if stdout is not
// a terminal. Distinct runes therefore keep hits visible without colors.
type ConsoleFixedWidth struct {
	BarRune rune
	HitRune rune
	colors  map[Part]*color.Color
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for consoles
// with a fixed width font.
//
// colors is a map from chart parts to colors, used for display. It may contain
// just a subset of the parts; parts without a color are printed plain.
// If colors is nil, a default palette is used.
func NewConsoleFixedWidthFormat(colors map[Part]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{
		BarRune: '=',
		HitRune: '#',
	}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[Part]*color.Color {
	palette := map[Part]*color.Color{
		Bar:  color.New(color.FgBlue),
		Hit:  color.New(color.FgRed, color.Bold),
		Axis: color.New(color.Faint),
	}
	return palette
}

// styled outputs s in the color configured for part.
func (fw *ConsoleFixedWidth) styled(w io.Writer, part Part, s string) {
	if s == "" {
		return
	}
	if c, ok := fw.colors[part]; ok && c != nil {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// scale outputs the header of a chart: the bounds of the range of positions,
// and a ruler above the bar area.
func (fw *ConsoleFixedWidth) scale(w io.Writer, l layout) {
	lo, hi := strconv.Itoa(l.lo), strconv.Itoa(l.hi)
	gap := max(l.barw-len(lo)-len(hi), 1)
	indent := strings.Repeat(" ", l.labelw+2)
	fw.styled(w, Axis, indent+lo+strings.Repeat(" ", gap)+hi)
	io.WriteString(w, "\n")
	fw.styled(w, Axis, strings.Repeat(" ", l.labelw)+" +"+strings.Repeat("-", l.barw))
	io.WriteString(w, "\n")
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > minLineWidth {
				config.LineWidth = w
			} else {
				config.LineWidth = minLineWidth
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}
