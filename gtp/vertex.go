package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jzhangbs/AlphaZero-1/game"
	"github.com/pkg/errors"
)

// GTP vertices skip the letter I, and row 1 is the bottom of the
// board.
const columns = "abcdefghjklmnopqrst"

func parseColour(arg string) (game.Player, error) {
	switch arg {
	case "b", "black":
		return game.Player(game.Black), nil
	case "w", "white":
		return game.Player(game.White), nil
	}
	return game.Player(game.None), errors.Errorf("%q is not a colour", arg)
}

func parseVertex(arg string, size int) (game.Single, error) {
	if arg == "pass" {
		return game.Pass, nil
	}
	if len(arg) < 2 {
		return 0, errors.Errorf("%q is not a vertex", arg)
	}
	col := strings.IndexByte(columns, arg[0])
	if col < 0 || col >= size {
		return 0, errors.Errorf("%q is not a column on a %d×%d board", arg[:1], size, size)
	}
	row, err := strconv.Atoi(arg[1:])
	if err != nil || row < 1 || row > size {
		return 0, errors.Errorf("%q is not a row on a %d×%d board", arg[1:], size, size)
	}
	return game.Single((size-row)*size + col), nil
}

func vertexString(s game.Single, size int) string {
	switch {
	case s.IsPass():
		return "pass"
	case s.IsResignation():
		return "resign"
	}
	row := size - int(s)/size
	col := int(s) % size
	return fmt.Sprintf("%c%d", columns[col]-'a'+'A', row)
}
