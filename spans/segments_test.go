package spans

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

const fox = "The quick brown fox jumps over the lazy dog!"

func TestSegmentsCoverText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	//
	text := FromString(fox, uax11.LatinContext)
	if text.SegmentCount() < 2 {
		t.Fatalf("expected text to be segmented, have %d segments", text.SegmentCount())
	}
	var b strings.Builder
	pos := 0
	for _, seg := range text.Segments() {
		if seg.Pos != pos {
			t.Fatalf("segments not contiguous: segment at %d, expected %d", seg.Pos, pos)
		}
		if seg.Len <= 0 {
			t.Fatalf("empty segment at %d", seg.Pos)
		}
		if seg.Width != len(text.Content(seg)) {
			t.Errorf("latin segment %q has width %d", text.Content(seg), seg.Width)
		}
		b.WriteString(text.Content(seg))
		pos += seg.Len
	}
	if b.String() != fox {
		t.Fatalf("segments do not reproduce text: %q", b.String())
	}
}

func TestSegmentAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	//
	text := FromString(fox, nil)
	pos := strings.Index(fox, "brown") + 2
	seg, err := text.SegmentAt(pos)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text.Content(seg), "brown") {
		t.Errorf("expected segment with 'brown', got %q", text.Content(seg))
	}
	if _, err := text.SegmentAt(len(fox)); err != ErrIndexOutOfBounds {
		t.Errorf("expected out of bounds error, got %v", err)
	}
}

func TestSegmentsOverlappingSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	//
	text := FromString(fox, nil)
	from := strings.Index(fox, "quick") + 1
	to := strings.Index(fox, "fox") + 1
	segs, err := text.SegmentsOverlapping(from, to)
	if err != nil {
		t.Fatal(err)
	}
	var joined string
	for _, seg := range segs {
		joined += text.Content(seg)
	}
	if !strings.Contains(joined, "quick") || !strings.Contains(joined, "brown") ||
		!strings.Contains(joined, "fox") || strings.Contains(joined, "The") ||
		strings.Contains(joined, "jumps") {
		t.Errorf("unexpected segments for selection: %q", joined)
	}
	touching, err := text.SegmentsTouching(segs[0].Pos, segs[0].Pos)
	if err != nil {
		t.Fatal(err)
	}
	if len(touching) != 2 {
		t.Errorf("expected boundary to touch 2 segments, have %d", len(touching))
	}
	if _, err := text.SegmentsOverlapping(5, 2); err != ErrIndexOutOfBounds {
		t.Errorf("expected error for reversed range, got %v", err)
	}
}

func TestWidth(t *testing.T) {
	text := FromString(fox, nil)
	w, err := text.Width(0, text.Len())
	if err != nil {
		t.Fatal(err)
	}
	if w != len(fox) {
		t.Errorf("expected width %d for latin text, have %d", len(fox), w)
	}
	if w, _ = text.Width(1, 2); w != 0 {
		t.Errorf("expected no complete segment in [1,2), have width %d", w)
	}
}

func TestBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intervals")
	defer teardown()
	//
	text := FromString(fox, nil)
	for _, linewidth := range []int{10, 15, 30, 100} {
		breaks := text.Breaks(linewidth)
		if len(breaks) == 0 || breaks[len(breaks)-1] != len(fox) {
			t.Fatalf("width %d: last break must be end of text, have %v", linewidth, breaks)
		}
		prev := 0
		for _, br := range breaks {
			if br <= prev {
				t.Fatalf("width %d: breaks not increasing: %v", linewidth, breaks)
			}
			w, err := text.Width(prev, br)
			if err != nil {
				t.Fatal(err)
			}
			if w > linewidth {
				t.Errorf("width %d: line %q is %d wide", linewidth, fox[prev:br], w)
			}
			prev = br
		}
	}
	if len(FromString(fox, nil).Breaks(1000)) != 1 {
		t.Errorf("expected a single line for wide lines")
	}
	if len(FromString("", nil).Breaks(10)) != 0 {
		t.Errorf("expected no breaks for empty text")
	}
}
