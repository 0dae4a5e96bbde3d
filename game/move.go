package game

import "fmt"

// Coordinate is a representation of coordinates. This is typically a move
type Coordinate interface {
	IsResignation() bool
	IsPass() bool
}

// Coord represents a (row, col) coordinate.
// Given we're unlikely to actually have a board size of 255x255 or greater,
// a pair of int16s is more than sufficient to represent the coordinates
//
// The Coord uses standard computer cartesian coordinates
//	- (0, 0) represents the top left
//	- (18, 18) represents the bottom right of a 19x19 board
type Coord struct {
	X, Y int16
}

func (c Coord) Add(other Coord) Coord { return Coord{c.X + other.X, c.Y + other.Y} }

func (c Coord) Eq(other Coord) bool { return c.X == other.X && c.Y == other.Y }

// IsResignation returns true when the coordinate represents a "resignation" move
func (c Coord) IsResignation() bool { return c.X == 254 && c.Y == 254 }

// IsPass returns true when the coordinate represents a "pass" move
func (c Coord) IsPass() bool { return c.X == 255 && c.Y == 255 }

// Single represents a coordinate as a single number, utilized in a rowmajor fashion.
//	- 0 represents the top left
//	- 18 represents the top right of a 19x19 board
//	- 19 represents (1, 0)
//	- -1 represents the "pass" move
//	- -2 represents the "resignation" move
type Single int32

// Pass is the pass move.
const Pass = Single(-1)

// IsResignation returns true when the coordinate represents a "resignation" move
func (c Single) IsResignation() bool { return c == -2 }

// IsPass returns true when the coordinate represents a "pass" move
func (c Single) IsPass() bool { return c == -1 }

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Single
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Single == other.Single
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%d", p.Player, p.Single) }
