package game

// Version of the game, printed by the command line on start.
var Version = "v0.1.0"

// Tableaux is the number of tableau piles; tableau i is dealt i+1 cards.
const Tableaux = 7

// StockIndex is the pile index the console uses for the stock, right after the tableaux.
const StockIndex = Tableaux

// SuitSize is the number of cards of one suit, i.e. a complete foundation.
const SuitSize = 13

// TurnSize is the number of cards counted off the stock on each draw.
const TurnSize = 3
