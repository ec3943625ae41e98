package layout

import "strings"

// Glyph describes one card of a pile to be drawn by Stack.
type Glyph struct {
	Face string
	Edge Edge
}

// Stack draws the glyphs of a pile overlapping each other, first glyph at the top
// of the block. Each stacked card hides the bottom rows of the card under it, so
// only the upper edge and the face of the earlier cards remain visible.
//
// The label goes on the first card and extras annotates the last one. An empty
// list of glyphs draws the empty slot.
func Stack(label string, glyphs []Glyph, extras string) []string {
	switch len(glyphs) {
	case 0:
		return Empty(label)
	case 1:
		return Card(glyphs[0].Face, label, extras, glyphs[0].Edge)
	}

	last := len(glyphs) - 1
	out := Card(glyphs[0].Face, label, "", glyphs[0].Edge)
	for i, g := range glyphs[1:] {
		ann := ""
		if i+1 == last {
			ann = extras
		}
		out = append(out[:len(out)-footer], Card(g.Face, "", ann, g.Edge)[header:]...)
	}
	return out
}

// Join combines blocks side by side, row by row. When blocks differ in height
// the shorter one is padded with blank rows as wide as its own first row, so the
// result is a rectangular block.
func Join(blocks ...[]string) []string {
	var out []string
	for _, block := range blocks {
		if out == nil {
			out = append([]string(nil), block...)
			continue
		}
		out = zip(out, block)
	}
	return out
}

func zip(left, right []string) []string {
	rows := max(len(left), len(right))
	leftFill := strings.Repeat(" ", firstWidth(left))
	rightFill := strings.Repeat(" ", firstWidth(right))
	out := make([]string, rows)
	for i := range rows {
		l, r := leftFill, rightFill
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		out[i] = l + r
	}
	return out
}

func firstWidth(block []string) int {
	if len(block) == 0 {
		return 0
	}
	return len(block[0])
}
