package wq

import (
	"sync"

	"lukechampine.com/frand"

	"github.com/jzhangbs/AlphaZero-1/game"
)

const bignum = 1<<63 - 2

// zobristSeed is fixed so that two independently constructed engines
// of the same board size agree on every hash value. Superko detection
// compares hashes between an original game and a simulated copy, and
// hashes may also be compared across processes.
var zobristSeed = [32]byte{
	0x77, 0x71, 0x5f, 0x77, 0x65, 0x69, 0x71, 0x69,
	0x5f, 0x7a, 0x6f, 0x62, 0x72, 0x69, 0x73, 0x74,
	0x5f, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x5f, 0x73,
	0x65, 0x65, 0x64, 0x5f, 0x30, 0x30, 0x30, 0x31,
}

var (
	ztLock  sync.Mutex
	ztCache = make(map[int32][]game.Zobrist)
)

// zobristTable returns the random table for one board size. The table
// is laid out as a (size*size, 2) matrix in rowmajor order: entry
// [s*2] is the black value for position s, [s*2+1] the white value.
// Built once per size from the fixed seed, then shared read-only.
func zobristTable(size int32) []game.Zobrist {
	ztLock.Lock()
	defer ztLock.Unlock()
	if t, ok := ztCache[size]; ok {
		return t
	}

	r := frand.NewCustom(zobristSeed[:], 1024, 12)
	t := make([]game.Zobrist, size*size*2)
	for i := range t {
		t[i] = game.Zobrist(r.Uint64n(bignum) + 1)
	}
	ztCache[size] = t
	return t
}

// zobrist is the incrementally maintained hash of the board contents.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// The empty board hashes to 0. Placing or removing a stone XORs the
// table entry for that (position, colour) pair, so the hash after any
// sequence of placements and removals equals the hash of the final
// board computed from scratch.
type zobrist struct {
	table []game.Zobrist // shared per-size table, never written
	hash  game.Zobrist
}

func makeZobrist(size int32) zobrist { return zobrist{table: zobristTable(size)} }

// update toggles the stone of m in or out of the hash.
func (z *zobrist) update(m game.PlayerMove) {
	switch game.Colour(m.Player) {
	case game.Black:
		z.hash ^= z.table[int32(m.Single)*2]
	case game.White:
		z.hash ^= z.table[int32(m.Single)*2+1]
	}
}
