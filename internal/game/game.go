package game

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
	"github.com/janpfeifer/GoKlondike/internal/layout"
	"k8s.io/klog/v2"
)

// Game holds the piles of one game of Klondike: the tableaux, one foundation
// per suit and the stock.
//
// A Game is not safe for concurrent use.
type Game struct {
	ID          uuid.UUID
	Tableaux    [Tableaux]*Pile
	Foundations map[Suit]*Pile
	Stock       *Pile
}

// New shuffles a fresh stock with rng and deals the tableaux: tableau i
// receives i+1 cards, of which only the last starts exposed.
func New(rng *rand.Rand) *Game {
	g := &Game{
		ID:          uuid.New(),
		Foundations: make(map[Suit]*Pile, len(Suits)),
		Stock:       NewStock(rng),
	}
	for i := range g.Tableaux {
		cards, err := g.Stock.RemoveCards(i + 1)
		if err != nil {
			// The stock always starts with a full deck.
			panic(fmt.Sprintf("dealing tableau %d: %v", i, err))
		}
		g.Tableaux[i] = NewPile(Tableau)
		g.Tableaux[i].deal(cards)
	}
	for _, suit := range Suits {
		g.Foundations[suit] = NewPile(Foundation)
	}
	klog.Infof("Game %s: dealt, %d cards left in stock", g.ID, g.Stock.Len())
	return g
}

// Solved reports whether every foundation is complete.
func (g *Game) Solved() bool {
	for _, suit := range Suits {
		if !g.Foundations[suit].Complete() {
			return false
		}
	}
	return true
}

// Pile returns the pile with the given index: 0 to Tableaux-1 are the
// tableaux, StockIndex is the stock.
func (g *Game) Pile(index int) (*Pile, error) {
	switch {
	case index >= 0 && index < Tableaux:
		return g.Tableaux[index], nil
	case index == StockIndex:
		return g.Stock, nil
	}
	return nil, fmt.Errorf("pile %d: %w", index, ErrNoSuchPile)
}

// Cards returns every card in the game, in no particular order.
func (g *Game) Cards() []Card {
	all := make([]Card, 0, len(Suits)*SuitSize)
	for _, t := range g.Tableaux {
		all = append(all, t.cards...)
	}
	for _, suit := range Suits {
		all = append(all, g.Foundations[suit].cards...)
	}
	return append(all, g.Stock.cards...)
}

// Draw turns the stock.
func (g *Game) Draw() {
	g.Stock.Turn()
	if top, ok := g.Stock.PeekTop(); ok {
		klog.V(1).Infof("Game %s: stock turned, showing %s", g.ID, top)
	}
}

// MoveToFoundation moves the bottom card of pile from onto the foundation of
// its suit. It returns false, without changing anything, if the pile is empty
// or the move is not legal.
func (g *Game) MoveToFoundation(from int) (bool, error) {
	src, err := g.Pile(from)
	if err != nil {
		return false, err
	}
	card, ok := src.PeekBottom()
	if !ok {
		return false, nil
	}
	dst := g.Foundations[card.Suit]
	if !dst.IsValidAdd(card) {
		return false, nil
	}
	if _, err := src.RemoveCard(); err != nil {
		return false, err
	}
	dst.AddCard(card)
	klog.V(1).Infof("Game %s: %s from pile %d to foundation %s", g.ID, card, from, card.Suit)
	return true, nil
}

// MoveToTableau moves the top card of pile from, together with the cards
// stacked on it, onto tableau to. It returns false, without changing anything,
// if the source is empty or the move is not legal.
func (g *Game) MoveToTableau(from, to int) (bool, error) {
	src, err := g.Pile(from)
	if err != nil {
		return false, err
	}
	if to < 0 || to >= Tableaux {
		return false, fmt.Errorf("move to pile %d: %w", to, ErrNotATableau)
	}
	dst := g.Tableaux[to]
	if src == dst {
		return false, nil
	}
	top, stacked, ok := src.PeekTopCards()
	if !ok || !dst.IsValidAdd(top) {
		return false, nil
	}
	if _, err := src.RemoveCards(len(stacked) + 1); err != nil {
		return false, err
	}
	dst.AddCards(append([]Card{top}, stacked...))
	klog.V(1).Infof("Game %s: %s (+%d) from pile %d to tableau %d", g.ID, top, len(stacked), from, to)
	return true, nil
}

// RenderOptions selects what Render draws.
type RenderOptions struct {
	ShowFoundations bool
	ShowDeck        bool

	// ShowAll reveals every card of every pile.
	ShowAll bool
}

// Render draws the board as rows of text: optionally the foundations block and
// a blank row, then the tableaux side by side, followed by the stock if requested.
func (g *Game) Render(opts RenderOptions) []string {
	var out []string
	if opts.ShowFoundations {
		blocks := make([][]string, 0, len(Suits))
		for _, suit := range Suits {
			blocks = append(blocks, g.Foundations[suit].Display(suit.String(), DisplayOptions{}))
		}
		out = append(layout.Join(blocks...), "")
	}

	blocks := make([][]string, 0, Tableaux+1)
	for i, t := range g.Tableaux {
		blocks = append(blocks, t.Display(strconv.Itoa(i), DisplayOptions{
			ShowAll:  opts.ShowAll,
			ShowFrom: From(t.Base()),
		}))
	}
	if opts.ShowDeck {
		blocks = append(blocks, g.Stock.Display(strconv.Itoa(StockIndex), DisplayOptions{ShowAll: opts.ShowAll}))
	}
	return append(out, layout.Join(blocks...)...)
}
