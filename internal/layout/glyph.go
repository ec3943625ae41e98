// Package layout renders playing cards as fixed-width text glyphs and composes
// piles of them into aligned blocks of rows.
//
// A block is a []string where every row has the same width. Blocks are built
// top to bottom and joined side by side with Join.
package layout

import "strings"

// Edge is the character used for the vertical sides of a card box.
type Edge byte

const (
	// Visible marks a card that is in play and can be inspected.
	Visible Edge = '|'

	// Hidden marks a slot or card that is structurally present but not
	// independently inspectable: empty piles, face-down cards.
	Hidden Edge = ':'
)

const (
	// Width of a card box, without the separator.
	Width = 5

	// Height of a full card glyph in rows.
	Height = 7

	// Separator is appended to every row, to keep neighbouring piles apart.
	Separator = "  "

	// footer is the number of rows dropped from a card when another one is stacked on it.
	footer = 3

	// header is the number of rows dropped from a card stacked on top of another one.
	header = 1
)

const border = "+---+"

// Card returns the glyph of a single card: a label row, a 5-row box showing
// face (right-aligned) and an annotation row with extras.
func Card(face, label, extras string, edge Edge) []string {
	e := string(edge)
	inner := e + "   " + e
	return []string{
		Center(label, Width) + Separator,
		border + Separator,
		inner + Separator,
		e + padLeft(face, 3) + e + Separator,
		inner + Separator,
		border + Separator,
		Center(extras, Width) + Separator,
	}
}

// Empty returns the glyph of an empty pile slot, with the same dimensions as Card.
func Empty(label string) []string {
	inner := string(Hidden) + "   " + string(Hidden)
	return []string{
		Center(label, Width) + Separator,
		border + Separator,
		inner + Separator,
		inner + Separator,
		inner + Separator,
		border + Separator,
		Center("", Width) + Separator,
	}
}

// Center pads s with spaces to width, putting the odd space on the right.
// Strings already at least width long are returned unchanged.
func Center(s string, width int) string {
	n := width - len(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
