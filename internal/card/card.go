package card

import (
	"strconv"
	"strings"
)

// Suit is one of the four French suits
type Suit uint8

// Suits in the order used by the hand evaluator (clubs first)
const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

// Suits lists every suit, clubs first
var Suits = []Suit{Club, Diamond, Heart, Spade}

// ParseSuit maps an input letter (S, H, D, C, any case) to a Suit
func ParseSuit(letter byte) (Suit, bool) {
	switch letter {
	case 'S', 's':
		return Spade, true
	case 'H', 'h':
		return Heart, true
	case 'D', 'd':
		return Diamond, true
	case 'C', 'c':
		return Club, true
	default:
		return 0, false
	}
}

// Letter returns the input letter for the suit
func (s Suit) Letter() string {
	switch s {
	case Club:
		return "C"
	case Diamond:
		return "D"
	case Heart:
		return "H"
	case Spade:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// String returns the suit name
func (s Suit) String() string {
	switch s {
	case Club:
		return "Club"
	case Diamond:
		return "Diamond"
	case Heart:
		return "Heart"
	case Spade:
		return "Spade"
	default:
		return "Unknown"
	}
}

// Rank is the face value of a card, Ace (1) through King (13).
// Zero is representable because the input format admits it.
type Rank uint8

// Named ranks
const (
	Ace   Rank = 1
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the short rank notation (A, 2-10, J, Q, K)
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
	default:
		return strconv.Itoa(int(r))
	}
}

// Card represents a playing card
type Card struct {
	suit Suit
	rank Rank
}

// New creates a card. Range checks belong to the input validator.
func New(suit Suit, rank Rank) Card {
	return Card{suit: suit, rank: rank}
}

// Suit returns the card suit
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the card rank
func (c Card) Rank() Rank {
	return c.rank
}

// Token returns the card in input notation, e.g. S10 or H1
func (c Card) Token() string {
	return c.suit.Letter() + strconv.Itoa(int(c.rank))
}

// String returns the card with its suit pip, e.g. ♠10 or ♥A
func (c Card) String() string {
	return c.suit.Symbol() + c.rank.String()
}

// Hand is exactly five cards
type Hand [5]Card

// Ranks returns the rank of every card, in hand order
func (h Hand) Ranks() [5]Rank {
	var ranks [5]Rank
	for i, c := range h {
		ranks[i] = c.rank
	}
	return ranks
}

// Tokens returns the hand in input notation, comma separated
func (h Hand) Tokens() string {
	tokens := make([]string, len(h))
	for i, c := range h {
		tokens[i] = c.Token()
	}
	return strings.Join(tokens, ",")
}

// String returns the hand as bracketed pips, e.g. [♠10, ♠J, ♠Q, ♠K, ♠A]
func (h Hand) String() string {
	cards := make([]string, len(h))
	for i, c := range h {
		cards[i] = c.String()
	}
	return "[" + strings.Join(cards, ", ") + "]"
}
