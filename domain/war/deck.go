package war

import "errors"

// ErrEmptyDeck is returned when a card is drawn from an exhausted deck.
// During a battle this means the roster was not cleaned up after the
// previous round; the round must abort rather than resolve degenerately.
var ErrEmptyDeck = errors.New("draw from empty deck")

// Deck is an ordered pile of cards owned by exactly one player at a time.
// Cards are drawn from the front and won cards are appended at the back,
// so the pile behaves as a FIFO queue across a whole game.
type Deck struct {
	cards []Card
}

// NewDeck creates a deck holding the given cards in order, front first.
func NewDeck(cards ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// NewStandardDeck creates the full 52-card deck, grouped by suit in the
// order ♣ ♦ ♥ ♠ with ranks ascending from Two to Ace.
func NewStandardDeck() *Deck {
	cards := make([]Card, 0, 52)
	for suit := uint8(Club); suit <= Spade; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{suit: suit, rank: rank})
		}
	}
	return &Deck{cards: cards}
}

// DrawFront removes and returns the front card of the deck.
// Returns ErrEmptyDeck if the deck holds no cards.
func (d *Deck) DrawFront() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// AppendAll adds the given cards to the back of the deck. The cards land
// behind every card already held, never interleaved.
func (d *Deck) AppendAll(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// Size returns the number of cards currently in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck holds no cards.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
