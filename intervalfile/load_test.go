package intervalfile

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

const lineRecords = `# start length label
10 2 third

0 5   first   record
3 5 second
`

const yamlRecords = `
- start: 10
  length: 2
  label: third
- start: 0
  length: 5
  label: first record
- start: 3
  length: 5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func starts(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Start
	}
	return out
}

func TestLoadLineFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	//
	tree, err := Load(writeFile(t, "records.txt", lineRecords))
	require.NoError(t, err)
	require.NoError(t, tree.Check())
	require.Equal(t, 3, tree.Len())
	records := tree.Values()
	require.Equal(t, []int{0, 3, 10}, starts(records))
	require.Equal(t, "first record", records[0].Label)
	require.Equal(t, 4, records[0].Line)
	require.Equal(t, "[3,8) second", records[1].String())
	require.Equal(t, []int{0, 3}, starts(tree.Overlapping(4, 4)))
}

func TestLoadYAMLFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	//
	tree, err := Load(writeFile(t, "records.yaml", yamlRecords))
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 10}, starts(tree.Values()))
	records := tree.Containing(3, 2)
	require.Len(t, records, 2)
	require.Equal(t, "first record", records[0].Label)
	require.Equal(t, "", records[1].Label)
	require.Equal(t, "[3,8)", records[1].String())
}

func TestSubscribersSeeAllRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	//
	var b strings.Builder
	for i := range 1000 {
		b.WriteString(strings.Repeat(" ", i%3))
		b.WriteString("5 ")
		b.WriteString(strings.Repeat("1", 1+i%2))
		b.WriteString("\n")
	}
	var count, total atomic.Int64
	var lines []int
	tree, err := Read(strings.NewReader(b.String()), LineFormat,
		WithSubscriber(func(r Record) { count.Add(1) }),
		WithSubscriber(func(r Record) { total.Add(int64(r.Length)) }),
		WithSubscriber(func(r Record) { lines = append(lines, r.Line) }),
		WithSubscriber(nil),
	)
	require.NoError(t, err)
	require.Equal(t, 1000, tree.Len())
	require.Equal(t, int64(1000), count.Load())
	require.Equal(t, int64(500*1+500*11), total.Load())
	require.Len(t, lines, 1000)
	for i, line := range lines {
		require.Equal(t, i+1, line)
	}
}

func TestReadEmptyInput(t *testing.T) {
	for _, format := range []Format{LineFormat, YAMLFormat} {
		tree, err := Read(strings.NewReader(""), format)
		require.NoError(t, err, format.String())
		require.True(t, tree.IsEmpty())
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	//
	_, err := Load(writeFile(t, "bad.txt", "0 5\n1 x\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
	require.Contains(t, err.Error(), "invalid length")
	//
	_, err = Load(writeFile(t, "neg.txt", "0 -5 negative\n"))
	require.ErrorContains(t, err, "negative length")
	//
	_, err = Load(writeFile(t, "short.txt", "17\n"))
	require.ErrorContains(t, err, "expected start and length")
	//
	_, err = Load(writeFile(t, "bad.yaml", "start: 1\n"))
	require.ErrorContains(t, err, "expected a sequence")
	//
	_, err = Load(writeFile(t, "neg.yml", "- start: 1\n  length: -1\n"))
	require.ErrorContains(t, err, "line 1")
	//
	_, err = Load(t.TempDir())
	require.ErrorContains(t, err, "not a regular file")
	//
	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestFormatFromName(t *testing.T) {
	require.Equal(t, YAMLFormat, FormatFromName("a/b.YAML"))
	require.Equal(t, YAMLFormat, FormatFromName("b.yml"))
	require.Equal(t, LineFormat, FormatFromName("b.txt"))
	require.Equal(t, LineFormat, FormatFromName("records"))
	require.Equal(t, "Format(9)", Format(9).String())
}
