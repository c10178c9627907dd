package war

// Player is a participant identified by name, holding exclusive ownership
// of one deck. Two players in the same game never share a name.
type Player struct {
	Name string
	Deck *Deck
}
