package wq

import (
	"github.com/jzhangbs/AlphaZero-1/game"
	"github.com/pkg/errors"
)

// isSuicide reports whether placing the stone of m would leave its own
// (possibly merged) group without liberties while capturing nothing.
//
// The check never mutates anything: if the target cell has no empty
// neighbour of its own, the move is saved either by a friendly
// neighbour group with a liberty elsewhere, or by an enemy neighbour
// group whose only liberty is the target (which the move captures).
func (g *Game) isSuicide(m game.PlayerMove) bool {
	s := m.Single
	colour := game.Colour(m.Player)
	if len(g.board.emptyNeighbours(s)) > 0 {
		return false
	}

	for _, n := range g.board.nbr.orth[s] {
		grp := g.board.groupAt(n)
		if grp == nil {
			continue
		}
		others := len(grp.liberties)
		if _, ok := grp.liberties[s]; ok {
			others--
		}
		if grp.colour == colour && others > 0 {
			// attaching to a friendly group that has liberties elsewhere
			return false
		}
		if grp.colour != colour && others == 0 {
			// the move captures this group
			return false
		}
	}
	return true
}

// legal checks every rule that applies to m and returns a moveError
// describing the first violation. Passing is always legal.
func (g *Game) legal(m game.PlayerMove) error {
	if m.Single.IsPass() {
		return nil
	}
	if !m.Player.IsValid() {
		return errors.WithMessage(moveError(m), "Impossible player")
	}
	if int32(m.Single) < 0 || int32(m.Single) >= g.board.size*g.board.size {
		return errors.WithMessage(moveError(m), "Impossible move")
	}
	if g.board.at(m.Single) != game.None {
		return errors.WithMessage(moveError(m), "Board location not empty")
	}
	if g.isSuicide(m) {
		return errors.WithMessage(moveError(m), "Suicide is not a valid option")
	}
	if m.Single == g.ko {
		return errors.WithMessage(moveError(m), "Ko point may not be retaken immediately")
	}
	if g.enforceSuperko && g.isPositionalSuperko(m) {
		return errors.WithMessage(moveError(m), "Positional superko violation")
	}
	return nil
}

// isPositionalSuperko reports whether m would recreate a whole-board
// position that has already occurred in this game.
//
// The full check simulates the move on a throwaway clone (with superko
// checking disabled, so the simulation cannot recurse) and looks the
// resulting hash up in the set of previously seen positions. That
// costs a whole move application, so it only runs when the target is a
// point the mover has already played - taken from the mover's own
// parity of the move history, or from the handicap stones. Any other
// move cannot repeat one of the mover's positions.
func (g *Game) isPositionalSuperko(m game.PlayerMove) bool {
	if !g.replays(m) {
		return false
	}

	c := g.clone()
	c.enforceSuperko = false
	c.Play(m)
	_, seen := g.seen[c.board.hash]
	return seen
}

// replays reports whether the mover has placed a stone on m.Single
// before. With no handicap, black owns the even half of the history;
// with handicap stones down, white moves first and owns it instead.
func (g *Game) replays(m game.PlayerMove) bool {
	for _, h := range g.handicaps {
		if h == m.Single {
			return true
		}
	}
	start := 1
	if (len(g.handicaps) == 0 && game.Colour(m.Player) == game.Black) ||
		(len(g.handicaps) > 0 && game.Colour(m.Player) == game.White) {
		start = 0
	}
	for i := start; i < len(g.history); i += 2 {
		if g.history[i].Single == m.Single {
			return true
		}
	}
	return false
}

// Check reports whether the move is legal in the current position.
func (g *Game) Check(m game.PlayerMove) bool {
	if m.Single.IsPass() {
		return true
	}
	if m.Single.IsResignation() {
		return false
	}
	return g.legal(m) == nil
}
