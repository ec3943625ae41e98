package game

import "errors"

var (
	// ErrRankBoundary is returned when asking for the rank after King or before Ace.
	ErrRankBoundary = errors.New("no rank beyond the boundary")

	// ErrEmptyPile is returned when removing a card from an empty pile.
	ErrEmptyPile = errors.New("pile is empty")

	// ErrNotEnoughCards is returned when removing more cards than a pile holds.
	ErrNotEnoughCards = errors.New("not enough cards in pile")

	// ErrNoSuchPile is returned for a pile index outside 0..Tableaux (the stock).
	ErrNoSuchPile = errors.New("no such pile")

	// ErrNotATableau is returned when a tableau move targets a pile that is not a tableau.
	ErrNotATableau = errors.New("pile is not a tableau")
)
