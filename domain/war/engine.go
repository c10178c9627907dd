package war

import (
	"errors"
	"fmt"
)

// ErrRosterIntegrity is returned when a round begins with an empty-decked
// player still in the roster. Eliminations from the previous round were
// not applied, which is a caller bug rather than a game event.
var ErrRosterIntegrity = errors.New("empty deck in roster at round start")

// PlayRound resolves one full battle of War. Every player commits the
// front card of their deck, tied ranks escalate into wars until a single
// highest rank remains, and the winner's deck receives the whole pot.
//
// Elimination is not applied here: after a resolution is returned, the
// caller removes IneligiblePlayers from the roster before starting the
// next round.
func (g *Game) PlayRound() (BattleResolution, error) {
	if len(g.players) < 2 {
		return BattleResolution{}, fmt.Errorf("cannot battle with %d player(s)", len(g.players))
	}
	for _, p := range g.players {
		if p.Deck.IsEmpty() {
			return BattleResolution{}, fmt.Errorf("%s: %w", p.Name, ErrRosterIntegrity)
		}
	}

	entries, err := g.drawEntries()
	if err != nil {
		return BattleResolution{}, err
	}
	return g.resolveBattle(entries)
}

// resolveBattle runs the war escalation loop over the initial entries.
// The pot accumulates every card drawn during the round, and latest
// always holds the batch the winner must come from: the newest war batch,
// or the initial entries if no rank matched.
//
// War rounds re-draw from every remaining player, not only the tied ones,
// and the final winner takes the entire pot. Ties are recomputed over the
// newest batch alone.
func (g *Game) resolveBattle(entries []BattleEntry) (BattleResolution, error) {
	pot := make([]Card, 0, len(entries))
	pot = addToPot(pot, entries)

	latest := entries
	pairs := identifyPairs(entries)
	for len(pairs) > 0 && len(g.players) > 1 {
		warEntries, err := g.drawEntries()
		if err != nil {
			// Mid-war exhaustion: the round aborts before any pot transfer.
			return BattleResolution{}, err
		}
		pot = addToPot(pot, warEntries)
		latest = warEntries
		pairs = identifyPairs(warEntries)
	}

	winning := latest[0]
	for _, entry := range latest[1:] {
		if entry.Card.Rank() > winning.Card.Rank() {
			winning = entry
		}
	}

	winning.Player.Deck.AppendAll(pot)

	return BattleResolution{
		Winner:      winning.Player,
		Pot:         pot,
		WinningCard: winning.Card,
	}, nil
}

// drawEntries draws one card from every player still in the roster and
// pairs it with its owner. A failed draw propagates with the player's
// name attached.
func (g *Game) drawEntries() ([]BattleEntry, error) {
	entries := make([]BattleEntry, 0, len(g.players))
	for _, p := range g.players {
		card, err := p.Deck.DrawFront()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		entries = append(entries, BattleEntry{Card: card, Player: p})
	}
	return entries, nil
}

// identifyPairs partitions the entries by rank and keeps only the ranks
// played by more than one player; those are the matches that force a war.
// Groups grow in entry order, and map iteration order is never used to
// break a tie.
func identifyPairs(entries []BattleEntry) map[Rank][]BattleEntry {
	byRank := make(map[Rank][]BattleEntry)
	for _, entry := range entries {
		rank := entry.Card.Rank()
		byRank[rank] = append(byRank[rank], entry)
	}

	for rank, group := range byRank {
		if len(group) <= 1 {
			delete(byRank, rank)
		}
	}
	return byRank
}

func addToPot(pot []Card, entries []BattleEntry) []Card {
	for _, entry := range entries {
		pot = append(pot, entry.Card)
	}
	return pot
}
