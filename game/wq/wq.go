// Package wq implements the rules and state of Go (the board game).
//
// "wq" is short for 围碁 (wéiqí), the Chinese name of the game. The
// obvious package name is, unfortunately, the name of the language.
//
// The package is built around an incrementally maintained index of
// connected groups and their liberties, so that move legality, capture
// resolution and scoring stay cheap when a tree search applies many
// thousands of moves per second. A single Game is not safe for
// concurrent mutation; searches exploring multiple branches must
// Clone first.
package wq

import (
	"sync"

	"github.com/jzhangbs/AlphaZero-1/game"
)

const (
	None  = game.None
	Black = game.Black
	White = game.White

	BlackP = game.Player(game.Black)
	WhiteP = game.Player(game.White)

	Pass = game.Pass
)

// noKo is the ko-point sentinel. It never compares equal to an
// on-board move.
const noKo = game.Single(-1)

// neighbours is the precomputed adjacency table for one board size:
// for every position, its on-board orthogonal neighbours (2-4 of them,
// depending on edge/corner) and its on-board diagonals. Tables are
// immutable once built and shared by every Game of the same size.
type neighbours struct {
	size int32
	orth [][]game.Single
	diag [][]game.Single
}

var (
	nbrLock  sync.Mutex
	nbrCache = make(map[int32]*neighbours)
)

// neighboursFor returns the adjacency table for the given board size,
// building it on first use.
func neighboursFor(size int32) *neighbours {
	nbrLock.Lock()
	defer nbrLock.Unlock()
	if nt, ok := nbrCache[size]; ok {
		return nt
	}

	nt := &neighbours{
		size: size,
		orth: make([][]game.Single, size*size),
		diag: make([][]game.Single, size*size),
	}
	for x := int32(0); x < size; x++ {
		for y := int32(0); y < size; y++ {
			s := x*size + y
			for _, d := range [4]game.Coord{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}} {
				nx, ny := x+int32(d.X), y+int32(d.Y)
				if nx >= 0 && nx < size && ny >= 0 && ny < size {
					nt.orth[s] = append(nt.orth[s], game.Single(nx*size+ny))
				}
			}
			for _, d := range [4]game.Coord{{X: -1, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}} {
				nx, ny := x+int32(d.X), y+int32(d.Y)
				if nx >= 0 && nx < size && ny >= 0 && ny < size {
					nt.diag[s] = append(nt.diag[s], game.Single(nx*size+ny))
				}
			}
		}
	}
	nbrCache[size] = nt
	return nt
}
