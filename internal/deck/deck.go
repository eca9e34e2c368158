package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/handcheck/internal/card"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a standard 52 card deck. The next card dealt is Cards[0].
type Deck struct {
	Cards []card.Card
}

// New returns a deck in suit then rank order (clubs ace first)
func New() *Deck {
	d := &Deck{Cards: make([]card.Card, 0, Size)}
	for _, suit := range card.Suits {
		for rank := card.Ace; rank <= card.King; rank++ {
			d.Cards = append(d.Cards, card.New(suit, rank))
		}
	}
	return d
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Shuffle permutes the remaining cards using r
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal removes n cards from the top of the deck
func (d *Deck) Deal(n int) ([]card.Card, error) {
	if n < 0 || n > len(d.Cards) {
		return nil, fmt.Errorf("cannot deal %d cards from a deck of %d", n, len(d.Cards))
	}
	dealt := make([]card.Card, n)
	copy(dealt, d.Cards[:n])
	d.Cards = d.Cards[n:]
	return dealt, nil
}

// DealHand deals five cards
func (d *Deck) DealHand() (card.Hand, error) {
	cards, err := d.Deal(len(card.Hand{}))
	if err != nil {
		return card.Hand{}, err
	}
	return card.Hand(cards), nil
}

// NewRand returns a generator seeded with seed, or randomly seeded when seed is 0
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
