package game

import "fmt"

// Colour is the state of a single point on the board.
type Colour int32

const (
	None Colour = iota
	Black
	White
)

// Format implements fmt.Formatter. %v prints the name, %s prints the
// glyph used when rendering boards.
func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Player represents a player. It's also a colour.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// Opponent returns the colour of the opposing player.
func (p Player) Opponent() Player {
	switch Colour(p) {
	case White:
		return Player(Black)
	case Black:
		return Player(White)
	}
	return Player(None)
}

// IsValid checks that a player is an actual player, not None.
func (p Player) IsValid() bool { return Colour(p) == Black || Colour(p) == White }
