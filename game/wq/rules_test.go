package wq

import (
	"testing"

	"github.com/jzhangbs/AlphaZero-1/game"
)

// · X O · ·
// X O · O ·
// · X O · ·
// the white stone at {1,1} is in atari; black capturing it at {1,2}
// creates the classic ko shape.
var koBoard = []game.Colour{
	Z, B, W, Z, Z,
	B, W, Z, W, Z,
	Z, B, W, Z, Z,
	Z, Z, Z, Z, Z,
	Z, Z, Z, Z, Z,
}

func TestKo(t *testing.T) {
	g := fromBoard(t, koBoard, BlackP)

	if _, err := g.Play(game.PlayerMove{Player: BlackP, Single: 7}); err != nil {
		t.Fatalf("ko capture: %v", err)
	}
	ko, ok := g.Ko()
	if !ok || ko != 6 {
		t.Fatalf("expected ko point 6, got %d (%v)", ko, ok)
	}

	// immediate recapture is forbidden
	if _, err := g.Play(game.PlayerMove{Player: WhiteP, Single: 6}); err == nil {
		t.Fatal("expected immediate ko recapture to be rejected")
	}

	// one move elsewhere each and the ko is gone
	if _, err := g.Play(game.PlayerMove{Player: WhiteP, Single: 24}); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Ko(); ok {
		t.Fatal("expected ko point to clear after a move elsewhere")
	}
	if _, err := g.Play(game.PlayerMove{Player: BlackP, Single: 20}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Play(game.PlayerMove{Player: WhiteP, Single: 6}); err != nil {
		t.Fatalf("delayed ko recapture should be legal: %v", err)
	}
}

func TestKo_SingleStoneOnly(t *testing.T) {
	// capturing with a group bigger than one stone never sets a ko
	// point, even when exactly one stone is taken
	g := fromBoard(t, []game.Colour{
		Z, Z, Z, Z, Z,
		B, W, W, W, Z,
		W, Z, B, W, Z,
		B, W, W, W, Z,
		Z, Z, Z, Z, Z,
	}, BlackP)

	// black plays {2,1}, joining the stone at {2,2} and capturing the
	// white stone at {2,0}
	if _, err := g.Play(game.PlayerMove{Player: BlackP, Single: 11}); err != nil {
		t.Fatal(err)
	}
	if taken := g.Captures(BlackP); taken != 1 {
		t.Fatalf("expected 1 capture, got %d", taken)
	}
	if _, ok := g.Ko(); ok {
		t.Fatal("a two-stone recapture shape must not set a ko point")
	}

	// and the snapback: white retakes both black stones at once
	if _, err := g.Play(game.PlayerMove{Player: WhiteP, Single: 10}); err != nil {
		t.Fatalf("snapback must stay legal: %v", err)
	}
	if taken := g.Captures(WhiteP); taken != 2 {
		t.Fatalf("expected 2 captures in the snapback, got %d", taken)
	}
	if _, ok := g.Ko(); ok {
		t.Fatal("a two-stone capture must not set a ko point")
	}
}

// two independent ko shapes on one board. Cycling through both kos
// with passes in between recreates whole-board positions without ever
// violating the simple ko rule.
var doubleKoBoard = []game.Colour{
	Z, B, W, Z, Z, Z,
	B, W, Z, W, Z, Z,
	Z, B, W, Z, Z, Z,
	Z, B, W, Z, Z, Z,
	B, Z, Z, W, Z, Z,
	Z, B, W, Z, Z, Z,
}

// the move sequence that sets up the repetition. After it, white
// playing {4,1} (single 25) would recreate the position after move
// two.
var superkoPrelude = []game.PlayerMove{
	{Player: BlackP, Single: 26}, // fills the lower ko shape
	{Player: WhiteP, Single: 25}, // takes the lower ko
	{Player: BlackP, Single: 8},  // takes the upper ko
	{Player: WhiteP, Single: Pass},
	{Player: BlackP, Single: 26}, // retakes the lower ko
	{Player: WhiteP, Single: 7},  // retakes the upper ko
	{Player: BlackP, Single: Pass},
}

func TestPositionalSuperko(t *testing.T) {
	g, err := NewFromBoard(doubleKoBoard, BlackP, 0, true, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range superkoPrelude {
		if _, err := g.Play(m); err != nil {
			t.Fatalf("prelude move %d (%v): %v", i, m, err)
		}
	}

	repeat := game.PlayerMove{Player: WhiteP, Single: 25}
	if _, ok := g.Ko(); ok {
		t.Fatal("no ko point should be active here")
	}
	if g.isSuicide(repeat) {
		t.Fatal("the repeating move is not suicide")
	}
	if !g.isPositionalSuperko(repeat) {
		t.Fatal("expected the repetition to be flagged as positional superko")
	}
	if _, err := g.Play(repeat); err == nil {
		t.Fatal("expected the superko violation to be rejected")
	}

	// the same game without superko enforcement accepts the cycle
	g2, err := NewFromBoard(doubleKoBoard, BlackP, 0, false, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range superkoPrelude {
		if _, err := g2.Play(m); err != nil {
			t.Fatalf("prelude move %d (%v): %v", i, m, err)
		}
	}
	if _, err := g2.Play(repeat); err != nil {
		t.Fatalf("with superko off the cycle is merely a ko: %v", err)
	}
}

func TestSuperko_OnlyChecksRepeats(t *testing.T) {
	// the expensive simulation only runs for points the mover has
	// played before
	g := New(5, 7.5, true, 8)
	g.Play(game.PlayerMove{Player: BlackP, Single: 12})
	if g.isPositionalSuperko(game.PlayerMove{Player: WhiteP, Single: 6}) {
		t.Fatal("a fresh point can never be a superko violation")
	}
}
