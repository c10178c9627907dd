package war

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Rank is the battle value of a card. Ranks are totally ordered from Two
// up to Ace and compare by ordinal only; suit never decides a battle.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack  // J
	Queen // Q
	King  // K
	Ace   // A, always high
)

// String returns the rank abbreviation (A, J, Q, K, or the number).
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// Card represents a playing card with suit and rank. Cards are immutable
// values; the engine only ever moves them between containers, it never
// copies one into two places.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank Rank  // Two through Ace
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: Two through Ace
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank Rank) (Card, error) {
	if suit > 3 || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank of the Card (Two through Ace).
func (c Card) Rank() Rank {
	return c.rank
}

// String returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case 0:
		suit = pterm.Black("♣")
	case 1:
		suit = pterm.LightRed("♦")
	case 2:
		suit = pterm.LightRed("♥")
	case 3:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	return c.rank.String() + suit
}
