package wq

import (
	"github.com/jzhangbs/AlphaZero-1/game"
	"github.com/pkg/errors"
)

// Transform returns copies of the history snapshots and the current
// board (in that order, oldest first) with one of the 8 dihedral
// symmetries of the square applied. id/4 selects a horizontal flip,
// id%4 the number of 90° counterclockwise rotations. The game itself,
// move history included, is never touched; the transformed boards are
// only meaningful for position evaluation.
func (g *Game) Transform(id int) ([][]game.Colour, error) {
	if id < 0 || id > 7 {
		return nil, errors.Errorf("transform %d is not one of the 8 dihedral transforms", id)
	}

	size := g.board.size
	retVal := make([][]game.Colour, 0, len(g.historical)+1)
	for _, hb := range g.historical {
		retVal = append(retVal, transformBoard(hb, size, id))
	}
	retVal = append(retVal, transformBoard(g.board.data, size, id))
	return retVal, nil
}

func transformBoard(board []game.Colour, size int32, id int) []game.Colour {
	retVal := make([]game.Colour, len(board))
	copy(retVal, board)
	if id/4 == 1 {
		retVal = fliplr(retVal, size)
	}
	for i := 0; i < id%4; i++ {
		retVal = rot90(retVal, size)
	}
	return retVal
}

// fliplr mirrors the board left to right.
func fliplr(board []game.Colour, size int32) []game.Colour {
	retVal := make([]game.Colour, len(board))
	for r := int32(0); r < size; r++ {
		for c := int32(0); c < size; c++ {
			retVal[r*size+c] = board[r*size+(size-1-c)]
		}
	}
	return retVal
}

// rot90 rotates the board 90° counterclockwise.
func rot90(board []game.Colour, size int32) []game.Colour {
	retVal := make([]game.Colour, len(board))
	for r := int32(0); r < size; r++ {
		for c := int32(0); c < size; c++ {
			retVal[r*size+c] = board[c*size+(size-1-r)]
		}
	}
	return retVal
}
