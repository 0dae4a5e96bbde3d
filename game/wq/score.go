package wq

import "github.com/jzhangbs/AlphaZero-1/game"

// Score returns p's area score: stones on the board plus empty points
// enclosed by p alone, plus komi for white, minus a point per pass p
// has made. Empty points touching both colours score nobody.
func (g *Game) Score(p game.Player) float32 {
	var score float32
	for i, c := range g.board.data {
		switch {
		case c == game.Colour(p):
			score++
		case c == game.None && g.isEyeish(game.Single(i), p):
			score++
		}
	}
	switch p {
	case WhiteP:
		score += g.komi
		score -= float32(g.passesWhite)
	case BlackP:
		score -= float32(g.passesBlack)
	}
	return score
}

// Winner compares the two area scores and returns the winning player,
// or None for a draw. It may be called at any point in the game, not
// only after it has ended.
func (g *Game) Winner() game.Player {
	blackScore := g.Score(BlackP)
	whiteScore := g.Score(WhiteP)
	switch {
	case blackScore > whiteScore:
		return BlackP
	case whiteScore > blackScore:
		return WhiteP
	default:
		return game.Player(game.None)
	}
}
