package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/intervals"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/pkg/errors"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth  int // total width of a row, in en
	LabelWidth int // width of the label column; 0 selects the widest label
	Context    *uax11.Context
}

// Chart tells the formatter how to present values of type V.
type Chart[V any] struct {
	Label func(V) string // nil labels rows with their interval
	Hit   func(V) bool   // nil highlights nothing
}

// Minimum widths, in en.
const (
	minBarWidth  = 8
	minLineWidth = 20
)

var setupClasses sync.Once

// Output renders the values of tree as a bar chart, using a given formatter.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
// An empty tree produces no output.
func Output[V any, I intervals.Introspector[V]](tree *intervals.Tree[V, I], out io.Writer,
	config *Config, fw *ConsoleFixedWidth, chart Chart[V]) error {
	//
	if tree == nil || out == nil || config == nil || fw == nil {
		return errors.New("illegal argument: nil")
	}
	if tree.IsEmpty() {
		return nil
	}
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	in := tree.Introspector()
	values := tree.Values()
	lo := in.Start(values[0]) // values are sorted by start
	hi := lo
	labels := make([]string, len(values))
	labelw := 0
	for i, v := range values {
		start, length := in.Start(v), in.Length(v)
		hi = max(hi, start+length)
		if chart.Label != nil {
			labels[i] = chart.Label(v)
		} else {
			labels[i] = fmt.Sprintf("[%d,%d)", start, start+length)
		}
		labelw = max(labelw, width(labels[i], context))
	}
	l := newLayout(config, labelw, lo, hi)
	tracer().Debugf("chart of %d rows: label=%d en, bar=%d en, range=[%d,%d)",
		len(values), l.labelw, l.barw, lo, hi)
	fw.scale(out, l)
	for i, v := range values {
		start := in.Start(v)
		hit := chart.Hit != nil && chart.Hit(v)
		c0, c1 := l.bar(start, start+in.Length(v))
		label := truncate(labels[i], l.labelw, context)
		fw.styled(out, Label, label)
		io.WriteString(out, strings.Repeat(" ", l.labelw-width(label, context)))
		fw.styled(out, Axis, " |")
		io.WriteString(out, strings.Repeat(" ", c0))
		if hit {
			fw.styled(out, Hit, strings.Repeat(string(fw.HitRune), c1-c0))
		} else {
			fw.styled(out, Bar, strings.Repeat(string(fw.BarRune), c1-c0))
		}
		io.WriteString(out, "\n")
	}
	return nil
}

// Print outputs a chart of the values of tree to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print[V any, I intervals.Introspector[V]](tree *intervals.Tree[V, I], chart Chart[V], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(tree, os.Stdout, config, NewConsoleFixedWidthFormat(nil), chart)
}

// --- Layout ----------------------------------------------------------------

// layout maps positions of the range [lo,hi) to columns of the bar area.
type layout struct {
	labelw, barw int
	lo, hi       int
}

func newLayout(config *Config, labelw, lo, hi int) layout {
	linew := max(config.LineWidth, minLineWidth)
	if config.LabelWidth > 0 {
		labelw = config.LabelWidth
	} else {
		labelw = min(labelw, linew/3)
	}
	l := layout{
		labelw: labelw,
		barw:   max(linew-labelw-2, minBarWidth),
		lo:     lo,
		hi:     hi,
	}
	if l.hi <= l.lo {
		l.hi = l.lo + 1
	}
	return l
}

func (l layout) column(pos int) int {
	return (pos - l.lo) * l.barw / (l.hi - l.lo)
}

// bar returns the columns [c0,c1) of the bar for interval [start,end).
// Every bar is at least one column wide.
func (l layout) bar(start, end int) (int, int) {
	c0, c1 := l.column(start), l.column(end)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if c1 > l.barw {
		c1 = l.barw
		c0 = min(c0, l.barw-1)
	}
	return c0, c1
}

// --- Measuring labels ------------------------------------------------------

// width returns the display width of s in en. Printable ASCII is narrow in
// every context and is counted directly.
func width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	if isPrintableASCII(s) {
		return len(s)
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// truncate returns the longest prefix of s not wider than w. As zero-width
// code-points do not add to the width, they stay with their base character.
func truncate(s string, w int, context *uax11.Context) string {
	if width(s, context) <= w {
		return s
	}
	cut := 0
	for i := range s {
		if width(s[:i], context) > w {
			break
		}
		cut = i
	}
	return s[:cut]
}
