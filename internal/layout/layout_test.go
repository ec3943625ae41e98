package layout

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestCardGlyph(t *testing.T) {
	got := Card("AS", "3", "+2", Visible)
	want := []string{
		"  3    ",
		"+---+  ",
		"|   |  ",
		"| AS|  ",
		"|   |  ",
		"+---+  ",
		" +2    ",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Card glyph:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	got = Card("10H", "", "", Hidden)
	if got[3] != ":10H:  " {
		t.Errorf("Hidden ten of hearts: got %q", got[3])
	}
}

func TestEmptyGlyph(t *testing.T) {
	got := Empty("")
	if len(got) != Height {
		t.Fatalf("Expected %d rows, got %d", Height, len(got))
	}
	for i, row := range got {
		if len(row) != Width+len(Separator) {
			t.Errorf("Row %d %q has width %d", i, row, len(row))
		}
	}
	if got[3] != ":   :  " {
		t.Errorf("Empty interior: got %q", got[3])
	}
}

func TestCenter(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"", "     "},
		{"7", "  7  "},
		{"+2", " +2  "},
		{"+23", " +23 "},
		{"+1234", "+1234"},
		{"+12345", "+12345"},
	}
	for _, tc := range testCases {
		if got := Center(tc.in, Width); got != tc.want {
			t.Errorf("Center(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStackCompression(t *testing.T) {
	for n := range 6 {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			glyphs := make([]Glyph, n)
			for i := range glyphs {
				glyphs[i] = Glyph{Face: fmt.Sprintf("%dS", i+1), Edge: Visible}
			}
			rows := Stack("0", glyphs, "+4")
			want := Height
			if n > 1 {
				want = Height + (n-1)*3
			}
			if len(rows) != want {
				t.Fatalf("%d glyphs: expected %d rows, got %d", n, want, len(rows))
			}
			if n > 0 && rows[len(rows)-1] != " +4    " {
				t.Errorf("Last row %q should carry the annotation", rows[len(rows)-1])
			}
		})
	}

	rows := Stack("1", []Glyph{{"KS", Hidden}, {"QH", Visible}}, "+1")
	want := []string{
		"  1    ",
		"+---+  ",
		":   :  ",
		": KS:  ",
		"+---+  ",
		"|   |  ",
		"| QH|  ",
		"|   |  ",
		"+---+  ",
		" +1    ",
	}
	if !slices.Equal(rows, want) {
		t.Errorf("Stack:\n%s\nwant:\n%s", strings.Join(rows, "\n"), strings.Join(want, "\n"))
	}
}

func TestJoinPadsShorterBlocks(t *testing.T) {
	tall := Stack("0", []Glyph{{"KS", Visible}, {"QH", Visible}, {"JC", Visible}}, "")
	short := Empty("1")
	mid := Stack("2", []Glyph{{"9D", Visible}, {"8C", Visible}}, "+3")

	out := Join(tall, short, mid)
	if len(out) != len(tall) {
		t.Fatalf("Expected %d rows, got %d", len(tall), len(out))
	}
	width := len(out[0])
	for i, row := range out {
		if len(row) != width {
			t.Errorf("Row %d has width %d, want %d: %q", i, len(row), width, row)
		}
	}
	if got := out[len(out)-1]; got != tall[len(tall)-1]+strings.Repeat(" ", 14) {
		t.Errorf("Last row not padded: %q", got)
	}

	// The tall block may come last too.
	out = Join(short, tall)
	if len(out) != len(tall) || !strings.HasPrefix(out[len(out)-1], strings.Repeat(" ", 7)) {
		t.Errorf("Left padding missing: %q", out)
	}

	if Join() != nil {
		t.Errorf("Join of nothing should be nil")
	}
}
