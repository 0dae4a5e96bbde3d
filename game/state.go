package game

// Zobrist is a type representing a "zobrist" hash.
// The word "Zobrist" is put in quotes because only Go and chess use zobrist hashing.
// Other games have different hashes of the boards (because only Go and Chess have subtractive boards).
//
// The hash is 64 bits wide: positions in a full game easily number in
// the hundreds, and a collision in the seen-positions set directly
// causes a false superko rejection.
type Zobrist uint64

// State is any game that implements these and is able to report back.
//
// A State performs no synchronization of its own: callers that explore
// multiple branches concurrently must Clone first and give each
// goroutine its own copy.
type State interface {
	// These methods represent the game state
	BoardSize() (int, int) // returns the board size
	Board() []Colour       // returns the board state
	ActionSpace() int      // returns the number of permissible actions
	Hash() Zobrist         // returns the hash of the board
	ToMove() Player        // returns the next player to move (terminology is a bit confusing - this means the current player)
	Passes() int           // returns number of passes that have been made
	MoveNumber() int       // returns count of moves so far that led to this point.
	LastMove() PlayerMove  // returns the last move that was made
	Handicap() int         // returns the number of handicap stones placed

	// Meta-game stuff
	Score(p Player) float32             // score of the given player
	AdditionalScore() float32           // additional tie breaking scores (like komi etc)
	Ended() (ended bool, winner Player) // has the game ended? if yes, then who's the winner?

	// interactions
	SetToMove(Player)         // set the next player to move
	Check(m PlayerMove) bool  // check if the placement is legal
	Apply(m PlayerMove) State // applies the move. The required side effect is the NextToMove has to change.
	Reset()                   // reset state

	// For feature extraction
	Historical(i int) []Colour // returns the board state from history

	// generics
	Eq(other State) bool
	Clone() State
}

// KomiSetter is any State that can set a Komi score.
//
// The komi score may be acquired from the State via AdditionalScore()
type KomiSetter interface {
	State
	SetKomi(komi float64) error
}

// CoordConverter is any State that can convert between the two
// coordinate representations of its board.
type CoordConverter interface {
	Ltoi(Coord) Single
	Itol(Single) Coord
}
