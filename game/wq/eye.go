package wq

import "github.com/jzhangbs/AlphaZero-1/game"

// isEyeish reports whether s is an empty point whose every orthogonal
// neighbour is owner's colour. This is the cheap approximation of an
// eye used by area scoring.
func (g *Game) isEyeish(s game.Single, owner game.Player) bool {
	if g.board.at(s) != game.None {
		return false
	}
	for _, n := range g.board.nbr.orth[s] {
		if g.board.at(n) != game.Colour(owner) {
			return false
		}
	}
	return true
}

// IsEye reports whether the point of m is a true eye for m.Player:
// eyeish, with at most one "bad" diagonal in the middle of the board
// and none on an edge or corner (as in Fuego, Michi and friends).
//
// A diagonal is bad when the opponent holds it, or when it is empty
// and recursively not itself an eye. The recursion carries an explicit
// visited set; a point already on the in-progress path is assumed to
// be an eye, which terminates cycles.
func (g *Game) IsEye(m game.PlayerMove) bool {
	return g.isEye(m.Single, m.Player, make(map[game.Single]struct{}))
}

func (g *Game) isEye(s game.Single, owner game.Player, visiting map[game.Single]struct{}) bool {
	if !g.isEyeish(s, owner) {
		return false
	}
	allowableBad := 0
	if len(g.board.nbr.orth[s]) == 4 {
		allowableBad = 1
	}

	bad := 0
	for _, d := range g.board.nbr.diag[s] {
		switch {
		case g.board.at(d) == game.Colour(owner.Opponent()):
			bad++
		case g.board.at(d) == game.None:
			if _, onPath := visiting[d]; !onPath {
				visiting[s] = struct{}{}
				if !g.isEye(d, owner, visiting) {
					bad++
				}
				delete(visiting, s)
			}
		}
		if bad > allowableBad {
			return false
		}
	}
	return true
}
