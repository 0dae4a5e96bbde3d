package wq

import (
	"fmt"

	"github.com/jzhangbs/AlphaZero-1/game"
	"github.com/pkg/errors"
)

// moveError is the typed failure for an illegal move. It carries the
// rejected move so callers (a search resampling actions, a GTP
// front-end reporting to a client) can recover it.
type moveError game.PlayerMove

func (err moveError) Error() string {
	return fmt.Sprintf("Unable to make %v", game.PlayerMove(err))
}

// IllegalMove reports whether err signals an illegal move, and if so
// returns the rejected move. It looks through any wrapping applied
// along the way.
func IllegalMove(err error) (game.PlayerMove, bool) {
	if me, ok := errors.Cause(err).(moveError); ok {
		return game.PlayerMove(me), true
	}
	return game.PlayerMove{Player: game.Player(game.None), Single: Pass}, false
}

// ErrGameStarted is returned when handicap stones are placed on a game
// that has already recorded moves. This is a caller bug, not a state
// the engine can reach through legal play.
var ErrGameStarted = errors.New("cannot place handicap stones on a started game")
