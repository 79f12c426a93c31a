package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/intervals"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/require"
)

type item struct {
	Pos, Len int
	Name     string
}

type itemPositions struct{}

func (itemPositions) Start(it item) int  { return it.Pos }
func (itemPositions) Length(it item) int { return it.Len }

func itemTree(items ...item) *intervals.Tree[item, itemPositions] {
	return intervals.New(itemPositions{}, items...)
}

func byName(it item) string { return it.Name }

func TestChart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	color.NoColor = true
	//
	tree := itemTree(item{10, 10, "ccc"}, item{0, 10, "a"}, item{5, 5, "bb"})
	var b strings.Builder
	err := Output(tree, &b, &Config{LineWidth: 25}, NewConsoleFixedWidthFormat(nil), Chart[item]{
		Label: byName,
		Hit:   func(it item) bool { return it.Name == "bb" },
	})
	require.NoError(t, err)
	expected := strings.Join([]string{
		"     0" + strings.Repeat(" ", 17) + "20",
		"    +--------------------",
		"a   |==========",
		"bb  |     #####",
		"ccc |          ==========",
		"",
	}, "\n")
	require.Equal(t, expected, b.String())
}

func TestChartDefaultLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	color.NoColor = true
	//
	tree := itemTree(item{Pos: 0, Len: 4}, item{Pos: 4, Len: 0})
	var b strings.Builder
	fw := NewConsoleFixedWidthFormat(nil)
	fw.BarRune = '-'
	err := Output(tree, &b, &Config{LineWidth: 20, LabelWidth: 5}, fw, Chart[item]{})
	require.NoError(t, err)
	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 5)
	// bar area is 20-5-2 = 13 columns wide, mapping [0,4)
	require.Equal(t, "[0,4) |-------------", lines[2])
	require.Equal(t, "[4,4) |            -", lines[3])
	require.Equal(t, "", lines[4])
}

func TestChartOfEmptyTree(t *testing.T) {
	var b strings.Builder
	err := Output(itemTree(), &b, &Config{LineWidth: 40}, NewConsoleFixedWidthFormat(nil), Chart[item]{})
	require.NoError(t, err)
	require.Empty(t, b.String())
	//
	err = Output(itemTree(), &b, nil, NewConsoleFixedWidthFormat(nil), Chart[item]{})
	require.Error(t, err)
}

func TestLabelsAreTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	color.NoColor = true
	//
	tree := itemTree(item{0, 1, "abcdefghij"}, item{1, 1, "日本語"})
	var b strings.Builder
	err := Output(tree, &b, &Config{LineWidth: 30, LabelWidth: 3}, NewConsoleFixedWidthFormat(nil),
		Chart[item]{Label: byName})
	require.NoError(t, err)
	lines := strings.Split(b.String(), "\n")
	require.True(t, strings.HasPrefix(lines[2], "abc |"), lines[2])
	require.True(t, strings.HasPrefix(lines[3], "日  |"), lines[3])
}

func TestASCIILabelsAreNarrow(t *testing.T) {
	ctx := uax11.LatinContext
	for _, label := range []string{"[0,4)", "[-12,100)", "a b", "{x}|<y>"} {
		require.Equal(t, len(label), width(label, ctx), label)
		require.Equal(t, label, truncate(label, len(label), ctx))
	}
	require.Equal(t, "[0,", truncate("[0,4)", 3, ctx))
	require.Equal(t, 0, width("", ctx))
}

func TestTruncate(t *testing.T) {
	ctx := uax11.LatinContext
	require.Equal(t, "hello", truncate("hello", 5, ctx))
	require.Equal(t, "hel", truncate("hello", 3, ctx))
	require.Equal(t, "", truncate("hello", 0, ctx))
	require.Equal(t, "é", truncate("éé", 1, ctx))
}

func TestLayoutKeepsBarsInside(t *testing.T) {
	l := newLayout(&Config{LineWidth: 30}, 4, 100, 100)
	require.Equal(t, 24, l.barw)
	c0, c1 := l.bar(100, 100)
	require.Equal(t, 0, c0)
	require.Equal(t, 1, c1)
	//
	l = newLayout(&Config{LineWidth: 5}, 50, 0, 10)
	require.Equal(t, minLineWidth/3, l.labelw)
	require.Equal(t, 12, l.barw)
	c0, c1 = l.bar(10, 10)
	require.Equal(t, l.barw-1, c0)
	require.Equal(t, l.barw, c1)
}
