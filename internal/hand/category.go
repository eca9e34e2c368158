package hand

import "fmt"

// Category is a poker hand category. Larger values are stronger hands.
type Category int

// Hand categories, weakest first
const (
	Nothing Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

type categoryInfo struct {
	id          string
	name        string
	description string
	example     string
}

var categories = map[Category]categoryInfo{
	RoyalFlush: {
		"RoyalFlush", "Royal Flush",
		"All cards are of the same suit. Number must be 10, J, Q, K, and A correspondingly.",
		"[♠10, ♠J, ♠Q, ♠K, ♠A], [♦10, ♦J, ♦Q, ♦K, ♦A]",
	},
	StraightFlush: {
		"StraightFlush", "Straight Flush",
		"All cards are of the same suit. Numbers of the five cards must be continuous.",
		"[♠9, ♠10, ♠J, ♠Q, ♠K], [♦4, ♦5, ♦6, ♦7, ♦8]",
	},
	FourOfAKind: {
		"FourOfAKind", "Four-of-a-Kind",
		"Four out of five cards must have the same number.",
		"[2,2,2,2,3], [6,6,6,6,5]",
	},
	FullHouse: {
		"FullHouse", "Full House",
		"Three out of five cards must have the same number and the remaining two must have the same number accordingly.",
		"[3,3,3,2,2], [7,7,7,J,J]",
	},
	Flush: {
		"Flush", "Flush",
		"All cards are of the same suit.",
		"[♠2, ♠J, ♠5, ♠7, ♠3], [♦10, ♦6, ♦3, ♦K, ♦A]",
	},
	Straight: {
		"Straight", "Straight",
		"Numbers of the five cards must be continuous and not all cards are of the same suit.",
		"[4,5,6,7,8], [8,9,10,J,Q]",
	},
	ThreeOfAKind: {
		"ThreeOfAKind", "Three-of-a-Kind",
		"Three out of five cards must have the same number.",
		"[3,3,3,6,7], [Q,Q,Q,4,8]",
	},
	TwoPair: {
		"TwoPair", "Two Pair",
		"There must be two pairs where a pair means two cards which have the same number.",
		"[2,2,3,3,6], [7,7,4,4,K]",
	},
	OnePair: {
		"OnePair", "One Pair",
		"There must be a pair where a pair means two cards which have the same number.",
		"[2,2,5,8,K], [Q,Q,7,8,10]",
	},
	Nothing: {
		"Nothing", "Nothing",
		"the cards don't match any of the hands above",
		"",
	},
}

// Categories returns every category in precedence order, Royal Flush first
func Categories() []Category {
	all := make([]Category, 0, len(categories))
	for c := RoyalFlush; c >= Nothing; c-- {
		all = append(all, c)
	}
	return all
}

// Position is the 1-based rank in the category table, Royal Flush being 1
func (c Category) Position() int {
	return int(RoyalFlush-c) + 1
}

// String returns the identifier, e.g. FourOfAKind
func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.id
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Name returns the display name, e.g. Four-of-a-Kind
func (c Category) Name() string {
	return categories[c].name
}

// Description returns the rule sentence for the category
func (c Category) Description() string {
	return categories[c].description
}

// Example returns sample hands for the category, empty for Nothing
func (c Category) Example() string {
	return categories[c].example
}

// Label is the full result line, e.g. "3. Four-of-a-Kind: Four out of five ..."
func (c Category) Label() string {
	return fmt.Sprintf("%d. %s: %s", c.Position(), c.Name(), c.Description())
}
