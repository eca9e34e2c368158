// Package checker turns one line of card input into one line of verdict
package checker

import (
	"github.com/arcanaland/handcheck/internal/card"
	"github.com/arcanaland/handcheck/internal/hand"
	"github.com/arcanaland/handcheck/internal/logger"
	"github.com/arcanaland/handcheck/internal/validator"
)

// ErrorText is the verdict for input that cannot be parsed
const ErrorText = "Error Input"

// Result is a classified hand
type Result struct {
	Cards    card.Hand
	Category hand.Category
	// Detail is a conventional description, empty when none exists for the hand
	Detail string
}

// Checker parses and classifies hands. It holds no per-hand state and is safe
// for concurrent use.
type Checker struct {
	log *logger.Logger
}

// New creates a checker logging through l; nil uses the root logger
func New(l *logger.Logger) *Checker {
	if l == nil {
		l = logger.Named("checker")
	}
	return &Checker{log: l}
}

// Check parses raw and classifies the hand. Errors match validator.ErrInvalidInput.
func (c *Checker) Check(raw string) (Result, error) {
	h, err := validator.Parse(raw)
	if err != nil {
		c.log.Debug().Str("input", raw).Err(err).Msg("rejected hand")
		return Result{}, err
	}

	res := Result{Cards: h, Category: hand.Classify(h)}
	if detail, err := hand.Describe(h); err == nil {
		res.Detail = detail
	} else {
		c.log.Trace().Str("hand", h.Tokens()).Err(err).Msg("no description")
	}

	c.log.Debug().
		Str("hand", h.Tokens()).
		Str("category", res.Category.String()).
		Msg("classified hand")

	return res, nil
}

// Process returns the category label for raw, or ErrorText when raw is invalid
func (c *Checker) Process(raw string) string {
	res, err := c.Check(raw)
	if err != nil {
		return ErrorText
	}
	return res.Category.Label()
}
