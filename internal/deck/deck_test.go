package deck

import (
	"testing"

	"github.com/arcanaland/handcheck/internal/card"
)

func TestNewDeckIsComplete(t *testing.T) {
	d := New()
	if d.Len() != Size {
		t.Fatalf("expected %d cards, got %d", Size, d.Len())
	}
	seen := make(map[card.Card]bool)
	for _, c := range d.Cards {
		if c.Rank() < card.Ace || c.Rank() > card.King {
			t.Fatalf("bad rank in %v", c)
		}
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestShuffleSameSeed(t *testing.T) {
	a, b := New(), New()
	a.Shuffle(NewRand(42))
	b.Shuffle(NewRand(42))
	for i := range a.Cards {
		if a.Cards[i] != b.Cards[i] {
			t.Fatalf("decks differ at %d: %v vs %v", i, a.Cards[i], b.Cards[i])
		}
	}
	if a.Len() != Size {
		t.Fatalf("shuffle changed deck size to %d", a.Len())
	}
}

func TestDealHand(t *testing.T) {
	d := New()
	h, err := d.DealHand()
	if err != nil {
		t.Fatal(err)
	}
	if h.Tokens() != "C1,C2,C3,C4,C5" {
		t.Fatalf("unexpected hand %s", h.Tokens())
	}
	if d.Len() != Size-5 {
		t.Fatalf("expected %d cards left, got %d", Size-5, d.Len())
	}
}

func TestDealExhausted(t *testing.T) {
	d := New()
	for i := 0; i < 10; i++ {
		if _, err := d.DealHand(); err != nil {
			t.Fatalf("deal %d: %v", i, err)
		}
	}
	if _, err := d.DealHand(); err == nil {
		t.Fatal("expected error dealing from a deck of 2")
	}
	if _, err := d.Deal(-1); err == nil {
		t.Fatal("expected error for negative count")
	}
}
