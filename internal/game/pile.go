package game

import (
	"fmt"
	"strconv"

	"github.com/janpfeifer/GoKlondike/internal/layout"
)

// Kind of pile. Behaviour that differs between piles (legality, removal,
// which card counts as the "top") is selected on the kind.
type Kind int

const (
	Tableau Kind = iota
	Foundation
	Stock
)

func (k Kind) String() string {
	switch k {
	case Tableau:
		return "tableau"
	case Foundation:
		return "foundation"
	case Stock:
		return "stock"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Pile is an ordered sequence of cards; the end of the sequence is the most
// recently added card.
//
// For a Tableau pile, base separates the face-down prefix (cards[:base]) from
// the exposed run (cards[base:]). The first exposed card is the pile's "top"
// and the last card its "bottom", where new cards are received.
// Invariant: 0 <= base <= len(cards), with base == len(cards) only when empty.
type Pile struct {
	kind  Kind
	cards []Card
	base  int
}

// NewPile creates an empty pile of the given kind.
func NewPile(kind Kind) *Pile {
	return &Pile{kind: kind}
}

// Kind of the pile.
func (p *Pile) Kind() Kind { return p.kind }

// Len returns the number of cards in the pile, hidden ones included.
func (p *Pile) Len() int { return len(p.cards) }

// Base returns the index of the first exposed card. It is always 0 for
// foundations and the stock.
func (p *Pile) Base() int { return p.base }

// Cards returns a copy of the pile's cards, oldest first.
func (p *Pile) Cards() []Card {
	return append([]Card(nil), p.cards...)
}

// AddCard puts card on the pile.
func (p *Pile) AddCard(card Card) {
	p.AddCards([]Card{card})
}

// AddCards puts cards on the pile, preserving their order.
// On an empty tableau the whole added run becomes exposed.
func (p *Pile) AddCards(cards []Card) {
	wasEmpty := len(p.cards) == 0
	p.cards = append(p.cards, cards...)
	if p.kind == Tableau && wasEmpty {
		p.base = 0
	}
}

// deal places the initial cards on a tableau: only the last one starts exposed.
func (p *Pile) deal(cards []Card) {
	p.cards = append(p.cards, cards...)
	p.base = max(len(p.cards)-1, 0)
}

// RemoveCard takes the most recently added card off the pile.
//
// On a tableau, removing the only exposed card turns over the card under it.
func (p *Pile) RemoveCard() (Card, error) {
	n := len(p.cards)
	if n == 0 {
		return Card{}, fmt.Errorf("remove from %s: %w", p.kind, ErrEmptyPile)
	}
	if p.kind == Tableau && p.base == n-1 && p.base > 0 {
		p.base--
	}
	card := p.cards[n-1]
	p.cards = p.cards[:n-1]
	if len(p.cards) == 0 {
		p.base = 0
	}
	return card, nil
}

// RemoveCards takes n cards off the pile, one at a time, and returns them in
// the order they were removed. Nothing is removed if the pile holds fewer than n cards.
func (p *Pile) RemoveCards(n int) ([]Card, error) {
	if n < 0 || n > len(p.cards) {
		return nil, fmt.Errorf("remove %d cards from %s of %d: %w", n, p.kind, len(p.cards), ErrNotEnoughCards)
	}
	removed := make([]Card, 0, n)
	for range n {
		card, err := p.RemoveCard()
		if err != nil {
			return removed, err
		}
		removed = append(removed, card)
	}
	return removed, nil
}

// PeekTop returns the pile's top card: the first exposed card for a tableau,
// the most recently added card otherwise. ok is false for an empty pile.
func (p *Pile) PeekTop() (card Card, ok bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	if p.kind == Tableau {
		return p.cards[p.base], true
	}
	return p.cards[len(p.cards)-1], true
}

// PeekBottom returns the most recently added card, the one that moves to a
// foundation and the one new tableau cards are built on. ok is false for an empty pile.
func (p *Pile) PeekBottom() (card Card, ok bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// PeekTopCards returns the top card and the cards stacked on it, the unit
// that moves together between tableaux. Only tableaux stack cards; other
// piles return their top card alone.
func (p *Pile) PeekTopCards() (top Card, stacked []Card, ok bool) {
	top, ok = p.PeekTop()
	if !ok || p.kind != Tableau {
		return top, nil, ok
	}
	return top, append([]Card(nil), p.cards[p.base+1:]...), true
}

// IsValidAdd reports whether card may be placed on the pile:
//
//   - tableau: a King on an empty pile, otherwise a card of the other colour
//     and exactly one rank below the bottom card;
//   - foundation: an Ace on an empty pile, otherwise the next rank of the same suit;
//   - stock: never.
func (p *Pile) IsValidAdd(card Card) bool {
	switch p.kind {
	case Tableau:
		bottom, ok := p.PeekBottom()
		if !ok {
			return card.IsKing()
		}
		if card.IsKing() || card.Colour() == bottom.Colour() {
			return false
		}
		next, err := card.Next()
		return err == nil && next == bottom.Rank

	case Foundation:
		top, ok := p.PeekTop()
		if !ok {
			return card.IsAce()
		}
		if card.IsAce() || card.Suit != top.Suit {
			return false
		}
		prev, err := card.Prev()
		return err == nil && prev == top.Rank
	}
	return false
}

// Complete reports whether a foundation holds its whole suit.
func (p *Pile) Complete() bool {
	return p.kind == Foundation && len(p.cards) == SuitSize
}

// DisplayOptions selects which cards of a pile Display draws.
type DisplayOptions struct {
	// ShowAll draws every card of the pile, face-down ones included.
	ShowAll bool

	// ShowFrom, if set, draws the cards from that index on, annotating the
	// last one with the number of cards left out.
	ShowFrom *int
}

// From is a convenience to build DisplayOptions.ShowFrom.
func From(i int) *int { return &i }

// Display renders the pile as a block of rows, labelled with label.
//
// By default only the top card is drawn, annotated with the number of cards
// under it. A pile with a single card is always drawn plainly.
func (p *Pile) Display(label string, opts DisplayOptions) []string {
	n := len(p.cards)
	switch {
	case n == 0:
		return layout.Empty(label)

	case n == 1:
		return layout.Card(p.cards[0].String(), label, "", layout.Visible)

	case opts.ShowAll:
		glyphs := make([]layout.Glyph, n)
		for i, card := range p.cards {
			edge := layout.Visible
			if p.kind == Tableau && i < p.base {
				edge = layout.Hidden
			}
			glyphs[i] = layout.Glyph{Face: card.String(), Edge: edge}
		}
		return layout.Stack(label, glyphs, "")

	case opts.ShowFrom != nil:
		extras := "+" + strconv.Itoa(*opts.ShowFrom)
		from := min(max(*opts.ShowFrom, 0), n-1)
		glyphs := make([]layout.Glyph, 0, n-from)
		for _, card := range p.cards[from:] {
			glyphs = append(glyphs, layout.Glyph{Face: card.String(), Edge: layout.Visible})
		}
		return layout.Stack(label, glyphs, extras)
	}

	top, _ := p.PeekTop()
	return layout.Card(top.String(), label, "+"+strconv.Itoa(n-1), layout.Visible)
}
