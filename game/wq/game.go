package wq

import (
	"fmt"

	"github.com/jzhangbs/AlphaZero-1/game"
	"github.com/pkg/errors"
)

var (
	_ game.State          = &Game{}
	_ game.KomiSetter     = &Game{}
	_ game.CoordConverter = &Game{}
)

// Game is a full game state: the board with its derived indices, plus
// everything a position alone does not capture - whose turn it is, the
// ko point, move and board history, the set of previously seen
// position hashes, pass and capture counts, and per-stone ages.
//
// A Game is mutated only through Play, Apply and PlaceHandicap. All
// other methods are read-only. It is not safe for concurrent mutation;
// Clone and hand each goroutine its own copy.
type Game struct {
	board      *Board
	nextToMove game.Player

	komi           float32 // komidashi, added to white's score
	enforceSuperko bool
	historyLength  int

	ko         game.Single       // noKo when there is no ko point
	handicaps  []game.Single     // handicap stones, if any
	history    []game.PlayerMove // every applied move, passes included
	historical [][]game.Colour   // ring of the last historyLength-1 pre-move boards
	seen       map[game.Zobrist]struct{}
	stoneAges  []int16 // moves since placement, -1 for empty cells

	passesBlack int
	passesWhite int
	captures    [2]int // stones captured, indexed by Player-1
	ended       bool

	// lazily rebuilt after every successful move
	sensibleCache []game.Single // legal non-eye moves
	eyeCache      []game.Single // legal moves into own eyes

	err error // error of the last Apply, see Err
}

// New creates a game on a size×size board. komi is white's
// compensation. enforceSuperko enables the positional superko rule on
// top of the simple ko rule. historyLength is the number of boards
// (the current one included) available for feature extraction; the
// ring of prior snapshots holds historyLength-1 entries.
func New(size int, komi float64, enforceSuperko bool, historyLength int) *Game {
	b := newBoard(size)
	g := &Game{
		board:          b,
		nextToMove:     BlackP,
		komi:           float32(komi),
		enforceSuperko: enforceSuperko,
		historyLength:  historyLength,
		ko:             noKo,
		historical:     emptyRing(size, historyLength-1),
		seen:           make(map[game.Zobrist]struct{}),
		stoneAges:      make([]int16, size*size),
		history:        make([]game.PlayerMove, 0, size*size),
	}
	for i := range g.stoneAges {
		g.stoneAges[i] = -1
	}
	return g
}

// NewFromBoard creates a game whose board already holds the given
// position, rebuilding groups, liberties and the hash from scratch.
// The snapshot is copied, not retained. next is the player to move.
// The position itself is not recorded in the seen-hash set, matching
// a game constructed by replaying moves.
func NewFromBoard(board []game.Colour, next game.Player, komi float64, enforceSuperko bool, historyLength int) (*Game, error) {
	size := isqrt(len(board))
	if size*size != len(board) {
		return nil, errors.Errorf("board of %d cells is not square", len(board))
	}
	if !next.IsValid() {
		return nil, errors.Errorf("%v cannot be the next player", next)
	}
	g := New(size, komi, enforceSuperko, historyLength)
	copy(g.board.data, board)
	g.board.index()
	for i, c := range g.board.data {
		if c != game.None {
			g.stoneAges[i] = 0
		}
	}
	g.nextToMove = next
	return g, nil
}

func emptyRing(size, n int) [][]game.Colour {
	ring := make([][]game.Colour, n)
	for i := range ring {
		ring[i] = make([]game.Colour, size*size)
	}
	return ring
}

func isqrt(a int) int {
	if a <= 1 {
		return a
	}
	start, end := 1, a/2
	var retVal int
	for start <= end {
		mid := (start + end) / 2
		if mid*mid <= a {
			start = mid + 1
			retVal = mid
		} else {
			end = mid - 1
		}
	}
	return retVal
}

// Play applies a move. If m.Player is None, the current player is
// assumed. On success it resolves captures, updates the ko point,
// records history and flips the player to move; it returns whether the
// game has ended (two consecutive passes). On failure it returns an
// IllegalMove-recoverable error and the state is left untouched.
func (g *Game) Play(m game.PlayerMove) (ended bool, err error) {
	if !m.Player.IsValid() {
		m.Player = g.nextToMove
	}
	if err := g.legal(m); err != nil {
		return g.ended, err
	}

	// the move is good. No early return past this point.
	g.ko = noKo
	for i := range g.stoneAges {
		if g.stoneAges[i] >= 0 {
			g.stoneAges[i]++
		}
	}
	g.snapshot()

	if !m.Single.IsPass() {
		captured := g.board.place(m)
		g.stoneAges[m.Single] = 0
		for _, id := range captured {
			prisoners := g.board.removeGroup(id)
			g.captures[m.Player-1] += len(prisoners)
			for _, s := range prisoners {
				g.stoneAges[s] = -1
			}
			if len(prisoners) == 1 {
				// it is a ko iff the opponent playing at the freed
				// point would recapture the new stone alone. A bigger
				// recapture is snapback, which stays legal.
				own := g.board.groupAt(m.Single)
				if len(own.stones) == 1 && len(own.liberties) == 1 {
					g.ko = prisoners[0]
				}
			}
		}
		g.seen[g.board.hash] = struct{}{}
	} else {
		switch m.Player {
		case BlackP:
			g.passesBlack++
		case WhiteP:
			g.passesWhite++
		}
	}

	g.nextToMove = m.Player.Opponent()
	g.history = append(g.history, m)
	g.sensibleCache, g.eyeCache = nil, nil

	// black passing then white passing ends the game
	if n := len(g.history); n > 1 &&
		g.history[n-1].Single.IsPass() && g.history[n-2].Single.IsPass() &&
		g.nextToMove == WhiteP {
		g.ended = true
	}
	return g.ended, nil
}

// snapshot pushes the current board into the history ring, dropping
// the oldest entry.
func (g *Game) snapshot() {
	if len(g.historical) == 0 {
		return
	}
	hb := g.historical[0]
	copy(g.historical, g.historical[1:])
	copy(hb, g.board.data)
	g.historical[len(g.historical)-1] = hb
}

// PlaceHandicap places handicap stones for black through the normal
// placement path, then clears the move history so the stones do not
// count as moves for parity or end-of-game purposes. Valid only before
// any move has been recorded. The batch is all or nothing: a rejected
// stone leaves the game exactly as it was.
func (g *Game) PlaceHandicap(stones []game.Single) error {
	if len(g.history) > 0 {
		return errors.WithStack(ErrGameStarted)
	}
	backup := g.clone()
	g.handicaps = append(g.handicaps, stones...)
	for _, s := range stones {
		if _, err := g.Play(game.PlayerMove{Player: BlackP, Single: s}); err != nil {
			*g = *backup
			return errors.WithMessagef(err, "handicap stone %d", s)
		}
	}
	g.history = g.history[:0]
	g.historical = emptyRing(int(g.board.size), g.historyLength-1)
	return nil
}

// LegalMoves returns every legal board move for the current player.
// Moves that fill the player's own true eyes are split out and only
// returned when includeEyes is true; passing is always available and
// never enumerated. The result is cached until the next successful
// move.
func (g *Game) LegalMoves(includeEyes bool) []game.Single {
	if g.sensibleCache == nil {
		g.sensibleCache = make([]game.Single, 0, len(g.board.data))
		g.eyeCache = g.eyeCache[:0]
		for i := range g.board.data {
			m := game.PlayerMove{Player: g.nextToMove, Single: game.Single(i)}
			if g.legal(m) != nil {
				continue
			}
			if g.IsEye(m) {
				g.eyeCache = append(g.eyeCache, m.Single)
			} else {
				g.sensibleCache = append(g.sensibleCache, m.Single)
			}
		}
	}
	if !includeEyes {
		return g.sensibleCache
	}
	retVal := make([]game.Single, 0, len(g.sensibleCache)+len(g.eyeCache))
	retVal = append(retVal, g.sensibleCache...)
	retVal = append(retVal, g.eyeCache...)
	return retVal
}

// Group returns the positions of the chain containing the stone at s,
// or nil for an empty cell. The returned slice is the live index; do
// not mutate it.
func (g *Game) Group(s game.Single) []game.Single {
	if grp := g.board.groupAt(s); grp != nil {
		return grp.stones
	}
	return nil
}

// Liberties returns the number of liberties of the chain containing
// the stone at s, or -1 for an empty cell.
func (g *Game) Liberties(s game.Single) int {
	if grp := g.board.groupAt(s); grp != nil {
		return len(grp.liberties)
	}
	return -1
}

// StoneAge returns how many moves ago the stone at s was placed, or -1
// for an empty cell.
func (g *Game) StoneAge(s game.Single) int { return int(g.stoneAges[s]) }

// Ko returns the current ko point and whether there is one.
func (g *Game) Ko() (game.Single, bool) { return g.ko, g.ko != noKo }

// Captures returns the number of stones p has captured.
func (g *Game) Captures(p game.Player) int {
	if !p.IsValid() {
		return 0
	}
	return g.captures[p-1]
}

// BoardSize returns the board size
func (g *Game) BoardSize() (int, int) { return int(g.board.size), int(g.board.size) }

// Board returns the board data. It is the live backing slice; do not
// mutate it.
func (g *Game) Board() []game.Colour { return g.board.data }

// Historical returns the i-th board snapshot from the history ring,
// oldest first.
func (g *Game) Historical(i int) []game.Colour { return g.historical[i] }

// Hash returns the hash of the current position.
func (g *Game) Hash() game.Zobrist { return g.board.hash }

// ActionSpace returns the number of board points.
func (g *Game) ActionSpace() int { return len(g.board.data) }

// SetToMove sets the next player to move. The cached legal-move lists
// belong to the previous mover and are dropped.
func (g *Game) SetToMove(p game.Player) {
	g.nextToMove = p
	g.sensibleCache, g.eyeCache = nil, nil
}

// ToMove returns the next player to move.
func (g *Game) ToMove() game.Player { return g.nextToMove }

// LastMove returns the last move made.
func (g *Game) LastMove() game.PlayerMove {
	if len(g.history) > 0 {
		return g.history[len(g.history)-1]
	}
	return game.PlayerMove{Player: game.Player(game.None), Single: Pass}
}

// Passes returns the total number of passes made by both players.
func (g *Game) Passes() int { return g.passesBlack + g.passesWhite }

// MoveNumber returns the number of moves made so far.
func (g *Game) MoveNumber() int { return len(g.history) }

// Handicap returns the number of handicap stones placed.
func (g *Game) Handicap() int { return len(g.handicaps) }

// AdditionalScore returns the komi.
func (g *Game) AdditionalScore() float32 { return g.komi }

// SetKomi sets the komi.
func (g *Game) SetKomi(komi float64) error {
	g.komi = float32(komi)
	return nil
}

// Apply applies the move in place and returns the same Game, so that
// wq.Game satisfies game.State. Any illegal-move error is retrievable
// through Err until the next Apply.
func (g *Game) Apply(m game.PlayerMove) game.State {
	_, g.err = g.Play(m)
	return g
}

// Err returns the error of the last Apply.
func (g *Game) Err() error { return g.err }

// Ended reports whether the game has ended, and if so who won.
func (g *Game) Ended() (ended bool, winner game.Player) {
	if !g.ended {
		return false, game.Player(game.None)
	}
	return true, g.Winner()
}

// Reset returns the game to a pristine state, keeping its
// configuration.
func (g *Game) Reset() {
	g.board.Reset()
	g.nextToMove = BlackP
	g.ko = noKo
	g.handicaps = g.handicaps[:0]
	g.history = g.history[:0]
	g.historical = emptyRing(int(g.board.size), g.historyLength-1)
	g.seen = make(map[game.Zobrist]struct{})
	for i := range g.stoneAges {
		g.stoneAges[i] = -1
	}
	g.passesBlack, g.passesWhite = 0, 0
	g.captures = [2]int{}
	g.ended = false
	g.sensibleCache, g.eyeCache = nil, nil
	g.err = nil
}

// Eq checks that both games are in the same state.
func (g *Game) Eq(other game.State) bool {
	ot, ok := other.(*Game)
	if !ok {
		return false
	}
	if g.nextToMove != ot.nextToMove ||
		g.komi != ot.komi ||
		g.enforceSuperko != ot.enforceSuperko ||
		g.ko != ot.ko ||
		g.passesBlack != ot.passesBlack ||
		g.passesWhite != ot.passesWhite ||
		g.captures != ot.captures ||
		g.ended != ot.ended ||
		len(g.history) != len(ot.history) {
		return false
	}
	for i, m := range g.history {
		if !m.Eq(ot.history[i]) {
			return false
		}
	}
	return g.board.Eq(ot.board)
}

// Clone produces a fully independent copy: mutating the clone can
// never be observed through the original. Stones that shared a group
// record keep sharing one (new) record in the clone.
func (g *Game) Clone() game.State { return g.clone() }

func (g *Game) clone() *Game {
	retVal := &Game{
		board:          g.board.Clone(),
		nextToMove:     g.nextToMove,
		komi:           g.komi,
		enforceSuperko: g.enforceSuperko,
		historyLength:  g.historyLength,
		ko:             g.ko,
		passesBlack:    g.passesBlack,
		passesWhite:    g.passesWhite,
		captures:       g.captures,
		ended:          g.ended,
	}
	retVal.handicaps = append([]game.Single(nil), g.handicaps...)
	retVal.history = append([]game.PlayerMove(nil), g.history...)
	retVal.historical = make([][]game.Colour, len(g.historical))
	for i, hb := range g.historical {
		retVal.historical[i] = append([]game.Colour(nil), hb...)
	}
	retVal.seen = make(map[game.Zobrist]struct{}, len(g.seen))
	for h := range g.seen {
		retVal.seen[h] = struct{}{}
	}
	retVal.stoneAges = append([]int16(nil), g.stoneAges...)
	return retVal
}

// Format implements fmt.Formatter
func (g *Game) Format(s fmt.State, c rune) { g.board.Format(s, c) }

// Itol converts a rowmajor index to a coordinate.
func (g *Game) Itol(s game.Single) game.Coord {
	return game.Coord{X: int16(int32(s) / g.board.size), Y: int16(int32(s) % g.board.size)}
}

// Ltoi converts a coordinate to a rowmajor index.
func (g *Game) Ltoi(c game.Coord) game.Single {
	return game.Single(int32(c.X)*g.board.size + int32(c.Y))
}
