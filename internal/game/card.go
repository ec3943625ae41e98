package game

import (
	"fmt"
	"strconv"
)

// Rank of a card, from Ace (1) to King (13).
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists all ranks in ascending order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// String returns the short name used on the card face: "A", "2", ..., "10", "J", "Q", "K".
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Next returns the rank immediately above r.
// It fails with ErrRankBoundary for King.
func (r Rank) Next() (Rank, error) {
	if !r.Valid() || r == King {
		return 0, fmt.Errorf("next of %s: %w", r, ErrRankBoundary)
	}
	return r + 1, nil
}

// Prev returns the rank immediately below r.
// It fails with ErrRankBoundary for Ace.
func (r Rank) Prev() (Rank, error) {
	if !r.Valid() || r == Ace {
		return 0, fmt.Errorf("prev of %s: %w", r, ErrRankBoundary)
	}
	return r - 1, nil
}

// Suit of a card.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists the suits in the fixed order used for dealing and for the foundation block.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the single letter used on the card face.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	}
	return "?"
}

// Colour returns the colour of the suit: two suits are black, two are red.
func (s Suit) Colour() Colour {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Colour of a suit, used for the alternation rule on the tableaux.
type Colour int

const (
	Black Colour = iota
	Red
)

func (c Colour) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Card is an immutable (rank, suit) pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card, validating rank and suit.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || suit < Spades || suit > Clubs {
		return Card{}, fmt.Errorf("invalid card rank=%d suit=%d", rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// Colour of the card's suit.
func (c Card) Colour() Colour { return c.Suit.Colour() }

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool { return c.Rank == Ace }

// IsKing reports whether the card is a King.
func (c Card) IsKing() bool { return c.Rank == King }

// Next returns the rank above the card's rank, see Rank.Next.
func (c Card) Next() (Rank, error) { return c.Rank.Next() }

// Prev returns the rank below the card's rank, see Rank.Prev.
func (c Card) Prev() (Rank, error) { return c.Rank.Prev() }

// String returns the card face, e.g. "AS" or "10H".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// FullDeck returns the 52 cards in a fixed order: suits in Suits order, ranks ascending.
func FullDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}
