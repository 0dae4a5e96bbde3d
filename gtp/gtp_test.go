package gtp

import (
	"testing"

	"github.com/jzhangbs/AlphaZero-1/game"
	"github.com/jzhangbs/AlphaZero-1/game/wq"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *Engine {
	e := New(wq.New(9, 7.5, true, 8), "xx", "1", nil)
	e.New = func(size int) game.State { return wq.New(size, 7.5, true, 8) }
	return e
}

func Test_General(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine()
	var x string

	ch, ret := e.Start()
	ch <- "version"
	x = <-ret
	assert.Equal("= 1\n\n", x)

	ch <- "1 name"
	x = <-ret
	assert.Equal("= 1 xx\n\n", x)

	ch <- "known_command hello"
	x = <-ret
	assert.Equal("= false\n\n", x)

	ch <- "known_command name"
	x = <-ret
	assert.Equal("= true\n\n", x)

	ch <- "completelyUnheardOfCommand xxx"
	x = <-ret
	assert.Equal("? Unknown command \"completelyunheardofcommand\"\n\n", x)
}

func Test_Play(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine()
	ch, ret := e.Start()

	ch <- "play b e5"
	assert.Equal("= \n\n", <-ret)
	ch <- "play w e4"
	assert.Equal("= \n\n", <-ret)

	board := e.State().Board()
	assert.Equal(game.Black, board[40])
	assert.Equal(game.White, board[49])

	// occupied point
	ch <- "play b e5"
	assert.Equal("? illegal move\n\n", <-ret)

	// malformed vertices
	ch <- "play b z5"
	assert.Contains(<-ret, "? ")
	ch <- "play b e99"
	assert.Contains(<-ret, "? ")

	ch <- "play w pass"
	assert.Equal("= \n\n", <-ret)

	// white: 1 stone + 7.5 komi - 1 pass; black: 1 stone
	ch <- "final_score"
	assert.Equal("= W+6.5\n\n", <-ret)
}

func Test_Genmove(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine()
	e.Generate = func(g game.State) game.PlayerMove {
		return game.PlayerMove{Player: g.ToMove(), Single: g.(*wq.Game).LegalMoves(false)[0]}
	}
	ch, ret := e.Start()

	ch <- "genmove b"
	x := <-ret
	assert.Equal("= A9\n\n", x, "the first legal point on an empty board is the top left")
	assert.Equal(game.Black, e.State().Board()[0])
	assert.Equal(game.Player(game.White), e.State().ToMove())

	ch <- "genmove x"
	assert.Contains(<-ret, "? ")
}

func Test_BoardsizeAndClear(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine()
	ch, ret := e.Start()

	ch <- "boardsize 13"
	assert.Equal("= \n\n", <-ret)
	rows, _ := e.State().BoardSize()
	assert.Equal(13, rows)

	ch <- "play b a1"
	assert.Equal("= \n\n", <-ret)
	ch <- "clear_board"
	assert.Equal("= \n\n", <-ret)
	assert.Equal(game.None, e.State().Board()[12*13])
}

func Test_FixedHandicap(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine()
	ch, ret := e.Start()

	ch <- "fixed_handicap 2"
	assert.Equal("= G7 C3\n\n", <-ret)
	assert.Equal(2, e.State().Handicap())

	// the star points are occupied now
	ch <- "fixed_handicap 2"
	assert.Contains(<-ret, "? ")
}

func TestVertex(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		arg  string
		size int
		want game.Single
	}{
		{"a1", 9, 72},   // bottom left
		{"a9", 9, 0},    // top left
		{"j1", 9, 80},   // bottom right: I is skipped, J is column 9
		{"e5", 9, 40},   // centre
		{"t19", 19, 18}, // top right of a full board
		{"pass", 9, game.Pass},
	}
	for _, tc := range tests {
		got, err := parseVertex(tc.arg, tc.size)
		assert.NoError(err, tc.arg)
		assert.Equal(tc.want, got, tc.arg)
		if !tc.want.IsPass() {
			rt := vertexString(got, tc.size)
			assert.Equal(len(tc.arg), len(rt), tc.arg)
		}
	}

	for _, bad := range []string{"i5", "z3", "a0", "a10", "e", ""} {
		_, err := parseVertex(bad, 9)
		assert.Error(err, bad)
	}
}
