package war

// BattleEntry pairs the card a player committed to the current battle or
// war sub-round. Entries only live for the duration of one round.
type BattleEntry struct {
	Card   Card
	Player *Player
}

// BattleResolution is the immutable outcome of one resolved round: the
// winning player, every card moved into the pot across the initial draw
// and all war escalations, and the card that won. The pot has already
// been appended to the winner's deck when a resolution is returned.
type BattleResolution struct {
	Winner      *Player
	Pot         []Card
	WinningCard Card
}
