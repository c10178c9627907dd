package war

import (
	"errors"
	"fmt"
)

// MaxPlayers is the roster capacity; with a single 52-card deck there can
// never be more players than cards.
const MaxPlayers = 52

var (
	// ErrDuplicatePlayer is returned when a player with the same name is
	// already in the game.
	ErrDuplicatePlayer = errors.New("player name already in game")

	// ErrTooManyPlayers is returned when the roster already holds
	// MaxPlayers players.
	ErrTooManyPlayers = errors.New("game is full")
)

// Game holds the roster of players still in the fight. A Game is not safe
// for concurrent use: whoever calls PlayRound owns it until the round is
// fully resolved.
type Game struct {
	players []*Player
}

// NewGame creates a game with an empty roster.
func NewGame() *Game {
	return &Game{}
}

// AddPlayer adds a player with an empty deck to the game. It rejects a
// name already present and refuses to grow the roster past MaxPlayers;
// in both cases the roster is left unchanged.
func (g *Game) AddPlayer(name string) error {
	for _, p := range g.players {
		if p.Name == name {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
	}
	if len(g.players) >= MaxPlayers {
		return ErrTooManyPlayers
	}

	g.players = append(g.players, &Player{Name: name, Deck: NewDeck()})
	return nil
}

// Players returns the players still in the game, in joining order.
func (g *Game) Players() []*Player {
	return g.players
}

// RemovePlayer takes a player out of the roster. Removing a player who is
// not in the roster is a no-op.
func (g *Game) RemovePlayer(player *Player) {
	for i, p := range g.players {
		if p == player {
			g.players = append(g.players[:i], g.players[i+1:]...)
			return
		}
	}
}

// RemovePlayers removes every listed player from the roster.
func (g *Game) RemovePlayers(players []*Player) {
	for _, p := range players {
		g.RemovePlayer(p)
	}
}

// DistributeCards deals floor(size/N) cards to each of the N players, one
// card per player per pass, always drawing the front card of source.
// Cards left over from an uneven split stay in source; their disposition
// is the caller's decision (see LeftoverPolicy).
func (g *Game) DistributeCards(source *Deck) error {
	if len(g.players) == 0 {
		return fmt.Errorf("no players to distribute to")
	}

	cardsPerPlayer := source.Size() / len(g.players)
	for i := 0; i < cardsPerPlayer; i++ {
		for _, p := range g.players {
			card, err := source.DrawFront()
			if err != nil {
				return err
			}
			p.Deck.AppendAll([]Card{card})
		}
	}
	return nil
}

// IneligiblePlayers returns the players whose decks are empty. Callers
// run it once per round, after the pot has been awarded, to drive
// elimination and end-of-game detection; a player is never removed
// mid-round even if their last card went into the pot.
func (g *Game) IneligiblePlayers() []*Player {
	var out []*Player
	for _, p := range g.players {
		if p.Deck.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}
