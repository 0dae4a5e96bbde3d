package wq

import (
	"testing"

	"github.com/jzhangbs/AlphaZero-1/game"
)

var (
	Z = None
	B = Black
	W = White
)

// fromBoard builds a game over a board literal with groups, liberties
// and hash indexed from scratch.
func fromBoard(t *testing.T, board []game.Colour, next game.Player) *Game {
	t.Helper()
	g, err := NewFromBoard(board, next, 0, false, 8)
	if err != nil {
		t.Fatalf("NewFromBoard: %v", err)
	}
	return g
}

var applyTests = []struct {
	board   []game.Colour
	move    game.PlayerMove
	board2  []game.Colour // nil if invalid
	taken   int
	willErr bool
}{
	// placing on an empty board
	{
		board: []game.Colour{
			Z, Z, Z,
			Z, Z, Z,
			Z, Z, Z,
		},
		move: game.PlayerMove{Player: BlackP, Single: 4}, // {1, 1}
		board2: []game.Colour{
			Z, Z, Z,
			Z, B, Z,
			Z, Z, Z,
		},
		taken:   0,
		willErr: false,
	},

	// basic capture
	// · O ·
	// O X O
	// · · ·
	//
	// becomes:
	//
	// · O ·
	// O · O
	// · O ·
	{
		board: []game.Colour{
			Z, W, Z,
			W, B, W,
			Z, Z, Z,
		},
		move: game.PlayerMove{Player: WhiteP, Single: 7}, // {2, 1}
		board2: []game.Colour{
			Z, W, Z,
			W, Z, W,
			Z, W, Z,
		},
		taken:   1,
		willErr: false,
	},

	// group capture
	// · O · ·
	// O X O ·
	// O X O ·
	// · · · ·
	{
		board: []game.Colour{
			Z, W, Z, Z,
			W, B, W, Z,
			W, B, W, Z,
			Z, Z, Z, Z,
		},
		move: game.PlayerMove{Player: WhiteP, Single: 13}, // {3, 1}
		board2: []game.Colour{
			Z, W, Z, Z,
			W, Z, W, Z,
			W, Z, W, Z,
			Z, W, Z, Z,
		},
		taken:   2,
		willErr: false,
	},

	// capture at the edge
	// · · · ·
	// · · · ·
	// · X X ·
	// X O O ·
	{
		board: []game.Colour{
			Z, Z, Z, Z,
			Z, Z, Z, Z,
			Z, B, B, Z,
			B, W, W, Z,
		},
		move: game.PlayerMove{Player: BlackP, Single: 15}, // {3, 3}
		board2: []game.Colour{
			Z, Z, Z, Z,
			Z, Z, Z, Z,
			Z, B, B, Z,
			B, Z, Z, B,
		},
		taken:   2,
		willErr: false,
	},

	// suicide
	// · X ·
	// X · X
	// · X ·
	{
		board: []game.Colour{
			Z, B, Z,
			B, Z, B,
			Z, B, Z,
		},
		move:    game.PlayerMove{Player: WhiteP, Single: 4}, // {1, 1}
		board2:  nil,
		taken:   0,
		willErr: true,
	},

	// suicide by filling the last liberty of a friendly group that
	// has no liberties elsewhere
	// X X O
	// O · O
	// · O ·
	{
		board: []game.Colour{
			B, B, W,
			W, Z, W,
			Z, W, Z,
		},
		move:    game.PlayerMove{Player: BlackP, Single: 4}, // {1, 1}
		board2:  nil,
		taken:   0,
		willErr: true,
	},

	// not suicide: a friendly neighbour still has a liberty elsewhere
	// X X ·
	// O · O
	// · O ·
	{
		board: []game.Colour{
			B, B, Z,
			W, Z, W,
			Z, W, Z,
		},
		move: game.PlayerMove{Player: WhiteP, Single: 4}, // merges with three white groups
		board2: []game.Colour{
			B, B, Z,
			W, W, W,
			Z, W, Z,
		},
		taken:   0,
		willErr: false,
	},

	// occupied cell
	{
		board: []game.Colour{
			Z, Z, Z,
			Z, B, Z,
			Z, Z, Z,
		},
		move:    game.PlayerMove{Player: WhiteP, Single: 4},
		board2:  nil,
		taken:   0,
		willErr: true,
	},

	// impossible move
	{
		board: []game.Colour{
			Z, Z, Z,
			Z, Z, Z,
			Z, Z, Z,
		},
		move:    game.PlayerMove{Player: BlackP, Single: 15},
		board2:  nil,
		taken:   0,
		willErr: true,
	},
}

func TestGame_Play(t *testing.T) {
	for testID, at := range applyTests {
		g := fromBoard(t, at.board, at.move.Player)
		before := g.clone()

		_, err := g.Play(at.move)
		switch {
		case at.willErr && err == nil:
			t.Errorf("Test %d: expected an error for\n%s", testID, g)
			continue
		case at.willErr && err != nil:
			// an illegal move must leave the state untouched
			if !g.Eq(before) {
				t.Errorf("Test %d: illegal move mutated the state:\n%s", testID, g)
			}
			if m, ok := IllegalMove(err); !ok || !m.Eq(at.move) {
				t.Errorf("Test %d: expected the error to carry %v, got %v (%v)", testID, at.move, m, err)
			}
			continue
		case !at.willErr && err != nil:
			t.Errorf("Test %d: err %v", testID, err)
			continue
		}

		if taken := g.Captures(at.move.Player); taken != at.taken {
			t.Errorf("Test %d: expected %d to be taken. Got %d instead", testID, at.taken, taken)
		}
		for i, v := range g.Board() {
			if v != at.board2[i] {
				t.Errorf("Test %d: board failure:\n%s", testID, g)
				break
			}
		}
		if g.ToMove() != at.move.Player.Opponent() {
			t.Errorf("Test %d: expected %v to move next", testID, at.move.Player.Opponent())
		}
	}
}

func TestGame_Play_MergeTransitive(t *testing.T) {
	// two separate black groups joined through the placed stone
	g := fromBoard(t, []game.Colour{
		B, Z, B,
		Z, Z, Z,
		Z, Z, Z,
	}, BlackP)

	if _, err := g.Play(game.PlayerMove{Player: BlackP, Single: 1}); err != nil {
		t.Fatal(err)
	}
	grp := g.Group(0)
	if len(grp) != 3 {
		t.Fatalf("expected one group of 3, got %v", grp)
	}
	for _, s := range []game.Single{0, 1, 2} {
		if g.Liberties(s) != 3 {
			t.Errorf("expected 3 liberties at %d, got %d", s, g.Liberties(s))
		}
	}
}

func TestGame_Play_Pass(t *testing.T) {
	g := New(5, 7.5, false, 8)
	if ended, err := g.Play(game.PlayerMove{Player: BlackP, Single: Pass}); err != nil || ended {
		t.Fatalf("black pass: ended %v, err %v", ended, err)
	}
	if g.ToMove() != WhiteP {
		t.Fatal("expected white to move")
	}
	if g.Passes() != 1 {
		t.Fatalf("expected 1 pass, got %d", g.Passes())
	}
}

func TestCloneEq(t *testing.T) {
	g := New(5, 7.5, true, 8)
	if !g.Eq(g) {
		t.Fatal("Failed basic equality")
	}
	pristine := g.clone()

	g.Play(game.PlayerMove{Player: BlackP, Single: 2})
	g.Play(game.PlayerMove{Player: WhiteP, Single: 4})

	g2 := g.clone()
	if g2 == g {
		t.Error("Cloning should not yield the same address")
	}
	if &g.board.data[0] == &g2.board.data[0] {
		t.Error("Cloning should not yield the same underlying backing")
	}
	if !g.Eq(g2) {
		t.Fatal("Cloning failed")
	}

	g.Reset()
	if !g.Eq(pristine) {
		t.Fatalf("Reset game should equal a new game\n%s\n%s", g, pristine)
	}
}
