package war

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// LeftoverPolicy decides what happens to the size mod N cards an uneven
// deal leaves in the stock deck. Equal distribution never touches them,
// so the caller has to pick a disposition up front.
type LeftoverPolicy string

const (
	// LeftoverStock leaves the remainder in the stock deck, out of play.
	LeftoverStock LeftoverPolicy = "stock"
	// LeftoverDiscard removes the remainder from the game entirely.
	LeftoverDiscard LeftoverPolicy = "discard"
	// LeftoverRoundRobin deals one extra card each to the first
	// size mod N players in joining order.
	LeftoverRoundRobin LeftoverPolicy = "round-robin"
)

// Match runs a full game of War on top of a Game roster and records how
// each round went.
type Match struct {
	ID      string
	game    *Game
	stock   *Deck
	records []RoundRecord
}

// RoundRecord is the serializable trace of one resolved round.
type RoundRecord struct {
	Round       int      `json:"round"`
	Winner      string   `json:"winner"`
	WinningRank Rank     `json:"winning_rank"`
	PotSize     int      `json:"pot_size"`
	Wars        int      `json:"wars,omitempty"`
	Eliminated  []string `json:"eliminated,omitempty"`
}

// MatchResult summarizes a finished (or round-capped) match.
type MatchResult struct {
	ID      string        `json:"id"`
	Winner  string        `json:"winner"`
	Rounds  int           `json:"rounds"`
	Records []RoundRecord `json:"records"`
}

// NewMatch builds a roster from the given names, shuffles a standard deck
// with the seed, deals it equally and applies the leftover policy.
func NewMatch(names []string, seed int64, policy LeftoverPolicy) (*Match, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("a match needs at least 2 players, got %d", len(names))
	}

	game := NewGame()
	for _, name := range names {
		if err := game.AddPlayer(name); err != nil {
			return nil, err
		}
	}

	stock := NewStandardDeck()
	stock.Shuffle(seed)
	if err := game.DistributeCards(stock); err != nil {
		return nil, err
	}
	if err := applyLeftoverPolicy(policy, stock, game); err != nil {
		return nil, err
	}

	return &Match{
		ID:    uuid.NewString(),
		game:  game,
		stock: stock,
	}, nil
}

func applyLeftoverPolicy(policy LeftoverPolicy, stock *Deck, game *Game) error {
	switch policy {
	case LeftoverStock:
	case LeftoverDiscard:
		for !stock.IsEmpty() {
			if _, err := stock.DrawFront(); err != nil {
				return err
			}
		}
	case LeftoverRoundRobin:
		for i := 0; !stock.IsEmpty(); i++ {
			card, err := stock.DrawFront()
			if err != nil {
				return err
			}
			players := game.Players()
			players[i%len(players)].Deck.AppendAll([]Card{card})
		}
	default:
		return fmt.Errorf("unknown leftover policy %q", policy)
	}
	return nil
}

// Game returns the underlying roster.
func (m *Match) Game() *Game {
	return m.game
}

// Stock returns the source deck; after setup it holds only the cards a
// LeftoverStock policy kept out of play.
func (m *Match) Stock() *Deck {
	return m.stock
}

// Rounds returns the number of rounds resolved so far.
func (m *Match) Rounds() int {
	return len(m.records)
}

// Done reports whether fewer than two players can still battle.
func (m *Match) Done() bool {
	return len(m.game.players) < 2
}

// PlayRound resolves one round, then removes the players it emptied.
func (m *Match) PlayRound() (RoundRecord, error) {
	playersIn := len(m.game.players)
	resolution, err := m.game.PlayRound()
	if err != nil {
		return RoundRecord{}, err
	}

	out := m.game.IneligiblePlayers()
	m.game.RemovePlayers(out)

	var eliminated []string
	for _, p := range out {
		eliminated = append(eliminated, p.Name)
	}

	record := RoundRecord{
		Round:       len(m.records) + 1,
		Winner:      resolution.Winner.Name,
		WinningRank: resolution.WinningCard.Rank(),
		PotSize:     len(resolution.Pot),
		// Every escalation draws one card from each player, so the pot
		// size tells how many wars the round took.
		Wars:       len(resolution.Pot)/playersIn - 1,
		Eliminated: eliminated,
	}
	m.records = append(m.records, record)
	return record, nil
}

// Play runs rounds until a single player remains or maxRounds have been
// resolved, whichever comes first.
func (m *Match) Play(maxRounds int) (MatchResult, error) {
	for !m.Done() && len(m.records) < maxRounds {
		if _, err := m.PlayRound(); err != nil {
			return MatchResult{}, err
		}
	}
	return m.Result(), nil
}

// Result summarizes the match so far. If more than one player is still
// in, the player holding the most cards leads.
func (m *Match) Result() MatchResult {
	winner := ""
	best := -1
	for _, p := range m.game.players {
		if p.Deck.Size() > best {
			best = p.Deck.Size()
			winner = p.Name
		}
	}
	return MatchResult{
		ID:      m.ID,
		Winner:  winner,
		Rounds:  len(m.records),
		Records: m.records,
	}
}

type standing struct {
	Name  string `json:"name"`
	Cards int    `json:"cards"`
}

// Snapshot serializes the current standings, for display or logging. It
// is a view of the live state, not a save game.
func (m *Match) Snapshot() ([]byte, error) {
	standings := make([]standing, 0, len(m.game.players))
	for _, p := range m.game.players {
		standings = append(standings, standing{Name: p.Name, Cards: p.Deck.Size()})
	}
	return json.Marshal(struct {
		ID      string     `json:"id"`
		Round   int        `json:"round"`
		Players []standing `json:"players"`
	}{m.ID, len(m.records), standings})
}
