package game

import "math/rand/v2"

// NewStock creates the stock with the 52 cards of a standard deck, shuffled
// once with rng.
//
// The stock is never discarded from while turning: Turn only rotates it, so
// cards can be cycled through any number of times.
func NewStock(rng *rand.Rand) *Pile {
	cards := FullDeck()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	p := NewPile(Stock)
	p.cards = cards
	return p
}

// rotateOne moves the front card of the pile to its back.
func (p *Pile) rotateOne() {
	if len(p.cards) < 2 {
		return
	}
	front := p.cards[0]
	copy(p.cards, p.cards[1:])
	p.cards[len(p.cards)-1] = front
}

// Turn counts TurnSize cards off the front of the stock onto its back,
// bringing a new card to the top. It does nothing on an empty pile.
func (p *Pile) Turn() {
	if len(p.cards) == 0 {
		return
	}
	for range TurnSize {
		p.rotateOne()
	}
}
