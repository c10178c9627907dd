package war

import "math/rand"

// Shuffle permutes the deck in place using a generator seeded with seed,
// so the same seed always deals the same game.
func (d *Deck) Shuffle(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
