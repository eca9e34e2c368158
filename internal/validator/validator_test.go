package validator

import (
	"errors"
	"testing"

	"github.com/arcanaland/handcheck/internal/card"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"numbers", "S10,S11,S12,S13,S1", "S1,S10,S11,S12,S13"},
		{"face letters", "S10,SJ,SQ,SK,S1", "S1,S10,S11,S12,S13"},
		{"ace letter", "HA,H2,H3,H4,H5", "H1,H2,H3,H4,H5"},
		{"lower case", "s4,h5,d6,c7,s8", "S4,H5,D6,C7,S8"},
		{"spaces", "  S4, H5 ,D 6,C7,  S8  ", "S4,H5,D6,C7,S8"},
		{"rank zero", "S0,H2,D3,C4,S5", "S0,H2,D3,C4,S5"},
		{"unsorted", "C13,D2,H7,S1,C5", "S1,D2,C5,H7,C13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got := hand.Tokens(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
	}{
		{"unknown suit", "X5,S13,C7,C1,D11", "X5"},
		{"too few", "S5,S13", ""},
		{"too many", "S1,S2,S3,S4,S5,S6", ""},
		{"duplicate collapses", "S1,H1,D1,C1,S1", ""},
		{"case duplicate collapses", "s5,S5,H3,D3,C3", ""},
		{"rank too high", "S14,H2,D3,C4,S5", "S14"},
		{"negative rank", "S-1,H2,D3,C4,S5", "S-1"},
		{"not a number", "SX,H2,D3,C4,S5", "SX"},
		{"missing rank", "S,H2,D3,C4,S5", "S"},
		{"empty token", "S1,,D3,C4,S5", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidInput", tt.input, err)
			}
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("Parse(%q) error is %T, want *InvalidInputError", tt.input, err)
			}
			if invalid.Token != tt.token {
				t.Errorf("Parse(%q) token = %q, want %q", tt.input, invalid.Token, tt.token)
			}
		})
	}
}

func TestValidateKeepsDedupedTokens(t *testing.T) {
	v := NewValidator("S5,S5,H3,H3,D3")
	if _, err := v.Validate(); err == nil {
		t.Fatal("expected error for collapsed duplicates")
	}
	if len(v.Tokens) != 3 {
		t.Fatalf("expected 3 tokens after dedup, got %v", v.Tokens)
	}
}

func TestParseSortsByRank(t *testing.T) {
	hand, err := Parse("D12,C3,H9,S3,D1")
	if err != nil {
		t.Fatal(err)
	}
	ranks := hand.Ranks()
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1] > ranks[i] {
			t.Fatalf("hand not sorted: %v", ranks)
		}
	}
	if hand[0] != card.New(card.Diamond, card.Ace) {
		t.Fatalf("expected ace of diamonds first, got %v", hand[0])
	}
	// stable sort keeps input order for equal ranks
	if hand[1].Suit() != card.Club || hand[2].Suit() != card.Spade {
		t.Fatalf("expected C3 before S3, got %v", hand)
	}
}
