package hand

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/arcanaland/handcheck/internal/card"
)

// Describe returns a conventional description of h such as "straight, king high".
// Hands holding a rank 0 card or a repeated card have no description.
func Describe(h card.Hand) (string, error) {
	seen := make(map[card.Card]bool, len(h))
	cards := make([]poker.Card, 0, len(h))
	for i, c := range h {
		if c.Rank() < card.Ace || c.Rank() > card.King {
			return "", fmt.Errorf("card %d (%s) has no face value", i, c.Token())
		}
		if seen[c] {
			return "", fmt.Errorf("card %s appears twice", c.Token())
		}
		seen[c] = true

		pc, err := poker.MakeCard(poker.Suit(c.Suit()), poker.Rank(c.Rank()))
		if err != nil {
			return "", fmt.Errorf("invalid card %s: %w", c.Token(), err)
		}
		cards = append(cards, pc)
	}
	return poker.Describe(cards)
}
