// Package hand classifies five-card hands into poker categories
package hand

import (
	"slices"

	"github.com/arcanaland/handcheck/internal/card"
)

// StraightKind is the outcome of straight evaluation
type StraightKind int

const (
	NotStraight StraightKind = iota
	// StraightRun covers every run of five consecutive ranks, A-2-3-4-5 included
	StraightRun
	// AceHighStraight is 10-J-Q-K with the ace playing high
	AceHighStraight
)

// IsStraight reports whether k is either kind of straight
func (k StraightKind) IsStraight() bool {
	return k != NotStraight
}

// EvaluateStraight inspects five ranks sorted ascending
func EvaluateStraight(ranks [5]card.Rank) StraightKind {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return NotStraight
		}
	}

	if ranks[0] == card.Ace &&
		ranks[1] == card.Ten && ranks[2] == card.Jack && ranks[3] == card.Queen && ranks[4] == card.King {
		return AceHighStraight
	}

	if ranks[4]-ranks[0] == 4 {
		return StraightRun
	}

	return NotStraight
}

// facts is everything the precedence rules look at, computed once per hand
type facts struct {
	rankCounts    map[card.Rank]int
	maxCount      int
	distinctRanks int
	flush         bool
	straight      StraightKind
}

func analyze(h card.Hand) facts {
	f := facts{rankCounts: make(map[card.Rank]int, len(h)), flush: true}

	for _, c := range h {
		f.rankCounts[c.Rank()]++
		if c.Suit() != h[0].Suit() {
			f.flush = false
		}
	}

	f.distinctRanks = len(f.rankCounts)
	for _, n := range f.rankCounts {
		f.maxCount = max(f.maxCount, n)
	}
	f.straight = EvaluateStraight(h.Ranks())

	return f
}

// Sorted returns a copy of h ordered ascending by rank
func Sorted(h card.Hand) card.Hand {
	slices.SortStableFunc(h[:], func(a, b card.Card) int {
		return int(a.Rank()) - int(b.Rank())
	})
	return h
}

// Classify returns the category of h. Card order does not matter.
func Classify(h card.Hand) Category {
	f := analyze(Sorted(h))

	switch {
	case f.flush && f.straight == AceHighStraight:
		return RoyalFlush
	case f.flush && f.straight.IsStraight():
		return StraightFlush
	case f.maxCount == 4:
		return FourOfAKind
	case f.maxCount == 3 && f.distinctRanks == 2:
		return FullHouse
	case f.flush:
		return Flush
	case f.straight.IsStraight():
		return Straight
	case f.maxCount == 3 && f.distinctRanks == 3:
		return ThreeOfAKind
	case f.distinctRanks == 3:
		return TwoPair
	case f.distinctRanks == 4:
		return OnePair
	default:
		return Nothing
	}
}
