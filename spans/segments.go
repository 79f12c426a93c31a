package spans

import (
	"bufio"
	"errors"
	"strings"
	"sync"

	"github.com/npillmayer/intervals"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// ErrIndexOutOfBounds is flagged whenever a byte range does not lie within
// the text.
var ErrIndexOutOfBounds = errors.New("spans: index out of bounds")

// Segment is a fragment of text between two line-break opportunities.
//
// Pos is the start byte offset, Len is the segment length in bytes. Width is
// the display width of the segment in fixed-width positions (“en”s).
type Segment struct {
	Pos   int
	Len   int
	Width int
}

// Positions is the introspector for segments.
type Positions struct{}

// Start returns the start byte offset of a segment.
func (Positions) Start(seg Segment) int { return seg.Pos }

// Length returns the length of a segment in bytes.
func (Positions) Length(seg Segment) int { return seg.Len }

// Text is a text together with an index of its segments.
type Text struct {
	text     string
	segments *intervals.Tree[Segment, Positions]
}

var setupClasses sync.Once

// FromString segments a string and indexes its segments. Display widths are
// measured within context; if context is nil, uax11.LatinContext is used.
func FromString(s string, context *uax11.Context) *Text {
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	t := &Text{
		text:     s,
		segments: intervals.Empty[Segment, Positions](),
	}
	if s == "" {
		return t
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(s)))
	pos := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		if len(frag) == 0 {
			continue
		}
		gstr := grapheme.StringFromString(frag)
		t.segments.Insert(Segment{
			Pos:   pos,
			Len:   len(frag),
			Width: uax11.StringWidth(gstr, context),
		})
		pos += len(frag)
	}
	tracer().Debugf("spans: text of %d bytes has %d segments", len(s), t.segments.Len())
	return t
}

// String returns the text.
func (t *Text) String() string {
	return t.text
}

// Len returns the length of the text in bytes.
func (t *Text) Len() int {
	return len(t.text)
}

// SegmentCount returns the number of segments of the text.
func (t *Text) SegmentCount() int {
	return t.segments.Len()
}

// Segments returns all segments in text order.
func (t *Text) Segments() []Segment {
	return t.segments.Values()
}

// Content returns the text of a segment.
func (t *Text) Content(seg Segment) string {
	return t.text[seg.Pos : seg.Pos+seg.Len]
}

// SegmentAt returns the segment which contains byte position pos.
func (t *Text) SegmentAt(pos int) (Segment, error) {
	if pos < 0 || pos >= len(t.text) {
		return Segment{}, ErrIndexOutOfBounds
	}
	hits := t.segments.Containing(pos, 0)
	if len(hits) == 0 { // segments cover the text, but be safe
		return Segment{}, ErrIndexOutOfBounds
	}
	return hits[0], nil
}

// SegmentsOverlapping returns the segments which share at least one byte
// with [from, to). For an empty range, the segment containing from is
// returned, unless from is a segment boundary.
func (t *Text) SegmentsOverlapping(from, to int) ([]Segment, error) {
	if err := t.checkRange(from, to); err != nil {
		return nil, err
	}
	return t.segments.Overlapping(from, to-from), nil
}

// SegmentsTouching returns the segments which overlap [from, to) or end at
// from or start at to.
func (t *Text) SegmentsTouching(from, to int) ([]Segment, error) {
	if err := t.checkRange(from, to); err != nil {
		return nil, err
	}
	return t.segments.Intersecting(from, to-from), nil
}

// Width returns the display width of the segments which lie completely
// within [from, to).
func (t *Text) Width(from, to int) (int, error) {
	if err := t.checkRange(from, to); err != nil {
		return 0, err
	}
	width := 0
	for _, seg := range t.segments.Overlapping(from, to-from) {
		if seg.Pos >= from && seg.Pos+seg.Len <= to {
			width += seg.Width
		}
	}
	return width, nil
}

func (t *Text) checkRange(from, to int) error {
	if from < 0 || to < from || to > len(t.text) {
		return ErrIndexOutOfBounds
	}
	return nil
}

// Breaks returns the byte positions where to break the text into lines of at
// most linewidth display positions. The last break position is the length of
// the text. Segments wider than a line get a line of their own. An empty text
// has no breaks.
//
// This implements a first-fit strategy:
//
//	1. |  SpaceLeft := LineWidth
//	2. |  for each Segment in Text
//	3. |      if Width(Segment) > SpaceLeft
//	4. |           insert line break before Segment
//	5. |           SpaceLeft := LineWidth - Width(Segment)
//	6. |      else
//	7. |           SpaceLeft := SpaceLeft - Width(Segment)
func (t *Text) Breaks(linewidth int) []int {
	breaks := make([]int, 0, 16)
	spaceleft := linewidth
	linestart := true
	for seg := range t.segments.All() {
		if seg.Width > spaceleft && !linestart {
			breaks = append(breaks, seg.Pos)
			tracer().Debugf("break @ %d", seg.Pos)
			spaceleft = linewidth
		}
		spaceleft -= seg.Width
		linestart = false
		if spaceleft <= 0 { // line is full
			breaks = append(breaks, seg.Pos+seg.Len)
			tracer().Debugf("break @ %d", seg.Pos+seg.Len)
			spaceleft = linewidth
			linestart = true
		}
	}
	if !linestart { // we have a partial line to consume
		breaks = append(breaks, len(t.text))
	}
	return breaks
}
