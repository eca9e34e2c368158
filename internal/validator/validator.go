package validator

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arcanaland/handcheck/internal/card"
)

// HandSize is the number of distinct tokens a hand must contain
const HandSize = 5

// MaxRank is the largest accepted rank literal. The lower bound is 0, not Ace.
const MaxRank = 13

// ErrInvalidInput is the single error kind reported for malformed hands
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError describes why a hand was rejected
type InvalidInputError struct {
	Token  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %q", ErrInvalidInput, e.Reason, e.Token)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput)
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// faceRanks are the letters accepted in place of a rank number
var faceRanks = map[string]card.Rank{
	"A": card.Ace,
	"J": card.Jack,
	"Q": card.Queen,
	"K": card.King,
}

// Validator turns one line of raw input into a hand
type Validator struct {
	Input  string
	Tokens []string
}

// NewValidator creates a validator for one raw input line
func NewValidator(input string) *Validator {
	return &Validator{Input: input}
}

// Parse validates raw input and returns the rank-sorted hand
func Parse(input string) (card.Hand, error) {
	return NewValidator(input).Validate()
}

// Validate runs every check and returns the hand sorted ascending by rank.
// The first failing check rejects the whole input.
func (v *Validator) Validate() (card.Hand, error) {
	v.Tokens = splitTokens(normalize(v.Input))

	if len(v.Tokens) != HandSize {
		return card.Hand{}, &InvalidInputError{
			Reason: fmt.Sprintf("expected %d distinct cards, got %d", HandSize, len(v.Tokens)),
		}
	}

	var hand card.Hand
	for i, token := range v.Tokens {
		c, err := parseToken(token)
		if err != nil {
			return card.Hand{}, err
		}
		hand[i] = c
	}

	slices.SortStableFunc(hand[:], func(a, b card.Card) int {
		return int(a.Rank()) - int(b.Rank())
	})

	return hand, nil
}

// normalize strips all whitespace and upper-cases the input
func normalize(input string) string {
	return strings.ToUpper(strings.Join(strings.Fields(input), ""))
}

// splitTokens splits on commas and drops exact duplicates, keeping first occurrences
func splitTokens(input string) []string {
	seen := make(map[string]bool)
	tokens := []string{}
	for _, token := range strings.Split(input, ",") {
		if seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

// parseToken reads one suit letter followed by a rank number or face letter
func parseToken(token string) (card.Card, error) {
	if token == "" {
		return card.Card{}, &InvalidInputError{Token: token, Reason: "empty card"}
	}

	suit, ok := card.ParseSuit(token[0])
	if !ok {
		return card.Card{}, &InvalidInputError{Token: token, Reason: "unknown suit"}
	}

	rest := token[1:]
	if rank, ok := faceRanks[rest]; ok {
		return card.New(suit, rank), nil
	}

	number, err := strconv.Atoi(rest)
	if err != nil {
		return card.Card{}, &InvalidInputError{Token: token, Reason: "rank is not a number"}
	}
	if number < 0 || number > MaxRank {
		return card.Card{}, &InvalidInputError{
			Token:  token,
			Reason: fmt.Sprintf("rank out of range 0-%d", MaxRank),
		}
	}

	return card.New(suit, card.Rank(number)), nil
}
