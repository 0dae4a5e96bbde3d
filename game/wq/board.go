package wq

import (
	"fmt"

	"github.com/jzhangbs/AlphaZero-1/game"
)

type groupID int32

const noGroup = groupID(-1)

// group is one chain of connected same-coloured stones together with
// its liberty set. Groups live in an arena on the Board, keyed by ID;
// every member cell stores the same ID, so all cells of a chain share
// one record. A merge relabels cells instead of rewiring pointers, and
// cloning a Board is a slice copy plus one pass over the arena.
type group struct {
	colour    game.Colour
	stones    []game.Single
	liberties map[game.Single]struct{}
}

func (g *group) clone() *group {
	stones := make([]game.Single, len(g.stones))
	copy(stones, g.stones)
	libs := make(map[game.Single]struct{}, len(g.liberties))
	for l := range g.liberties {
		libs[l] = struct{}{}
	}
	return &group{colour: g.colour, stones: stones, liberties: libs}
}

// Board is the board contents plus the derived indices that must stay
// consistent with it: the group arena, the per-cell group IDs and the
// zobrist hash.
type Board struct {
	size    int32
	data    []game.Colour // backing data, rowmajor
	ids     []groupID     // per-cell group ID, noGroup when empty
	groups  map[groupID]*group
	nextID  groupID
	nbr     *neighbours // shared per-size table, read-only
	zobrist             // hashing of the board
}

func newBoard(size int) *Board {
	sz := int32(size)
	b := &Board{
		size:    sz,
		data:    make([]game.Colour, sz*sz),
		ids:     make([]groupID, sz*sz),
		groups:  make(map[groupID]*group),
		nbr:     neighboursFor(sz),
		zobrist: makeZobrist(sz),
	}
	for i := range b.ids {
		b.ids[i] = noGroup
	}
	return b
}

// Clone clones the board. Cells that shared a group record in the
// original share a (new) group record in the clone.
func (b *Board) Clone() *Board {
	data := make([]game.Colour, len(b.data))
	copy(data, b.data)
	ids := make([]groupID, len(b.ids))
	copy(ids, b.ids)
	groups := make(map[groupID]*group, len(b.groups))
	for id, grp := range b.groups {
		groups[id] = grp.clone()
	}
	return &Board{
		size:    b.size,
		data:    data,
		ids:     ids,
		groups:  groups,
		nextID:  b.nextID,
		nbr:     b.nbr,
		zobrist: b.zobrist, // the table is shared, the hash is a value
	}
}

// Eq checks that both boards hold the same position. Group IDs are
// arbitrary labels and are not compared.
func (b *Board) Eq(other *Board) bool {
	if b == other {
		return true
	}
	if b.size != other.size || b.hash != other.hash {
		return false
	}
	for i, c := range b.data {
		if c != other.data[i] {
			return false
		}
	}
	return true
}

// Format implements fmt.Formatter
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		it := game.MakeIterator(b.data, b.size, b.size)
		defer game.ReturnIterator(b.size, b.size, it)
		for _, row := range it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

// Reset resets the board state
func (b *Board) Reset() {
	for i := range b.data {
		b.data[i] = game.None
		b.ids[i] = noGroup
	}
	b.groups = make(map[groupID]*group)
	b.nextID = 0
	b.hash = 0
}

// Hash returns the current hash of the board
func (b *Board) Hash() game.Zobrist { return b.hash }

// at is a bounds-free accessor for in-package use.
func (b *Board) at(s game.Single) game.Colour { return b.data[s] }

// groupAt returns the group record of the stone at s, or nil for an
// empty cell.
func (b *Board) groupAt(s game.Single) *group {
	if id := b.ids[s]; id != noGroup {
		return b.groups[id]
	}
	return nil
}

// emptyNeighbours returns the empty points orthogonally adjacent to s,
// read fresh from the board so it can never go stale.
func (b *Board) emptyNeighbours(s game.Single) []game.Single {
	var retVal []game.Single
	for _, n := range b.nbr.orth[s] {
		if b.data[n] == game.None {
			retVal = append(retVal, n)
		}
	}
	return retVal
}

// place puts the stone of m on the board and updates every derived
// index. The move must already have been validated: the cell is empty
// and the placement is not suicide. It returns the IDs of enemy groups
// left with zero liberties, which the caller must remove before the
// move is considered complete.
func (b *Board) place(m game.PlayerMove) (captured []groupID) {
	s := m.Single
	colour := game.Colour(m.Player)

	// take s out of the liberty sets of every adjacent group, and note
	// which friendly groups the new stone connects to
	var friends []groupID
	for _, n := range b.nbr.orth[s] {
		id := b.ids[n]
		if id == noGroup {
			continue
		}
		grp := b.groups[id]
		delete(grp.liberties, s)
		if grp.colour == colour {
			if !containsID(friends, id) {
				friends = append(friends, id)
			}
		} else if len(grp.liberties) == 0 && !containsID(captured, id) {
			captured = append(captured, id)
		}
	}

	// merge: the largest connected friendly group absorbs the others
	// and the new stone. Merging through s is transitive by
	// construction - every friendly neighbour ends up in the winner.
	var winner groupID
	if len(friends) == 0 {
		winner = b.nextID
		b.nextID++
		b.groups[winner] = &group{colour: colour, liberties: make(map[game.Single]struct{})}
	} else {
		winner = friends[0]
		for _, id := range friends[1:] {
			if len(b.groups[id].stones) > len(b.groups[winner].stones) {
				winner = id
			}
		}
		for _, id := range friends {
			if id == winner {
				continue
			}
			loser := b.groups[id]
			for _, st := range loser.stones {
				b.ids[st] = winner
			}
			b.groups[winner].stones = append(b.groups[winner].stones, loser.stones...)
			for l := range loser.liberties {
				b.groups[winner].liberties[l] = struct{}{}
			}
			delete(b.groups, id)
		}
	}

	win := b.groups[winner]
	win.stones = append(win.stones, s)
	for _, n := range b.emptyNeighbours(s) {
		win.liberties[n] = struct{}{}
	}

	b.data[s] = colour
	b.ids[s] = winner
	b.zobrist.update(m)
	return captured
}

// removeGroup takes a captured group off the board: hash entries are
// toggled out, cells cleared, and every freed point is handed back as
// a liberty to the still-standing groups around it. Returns the freed
// points.
func (b *Board) removeGroup(id groupID) []game.Single {
	grp := b.groups[id]
	for _, s := range grp.stones {
		b.zobrist.update(game.PlayerMove{Player: game.Player(grp.colour), Single: s})
		b.data[s] = game.None
		b.ids[s] = noGroup
	}
	delete(b.groups, id)
	for _, s := range grp.stones {
		for _, n := range b.nbr.orth[s] {
			if nid := b.ids[n]; nid != noGroup {
				b.groups[nid].liberties[s] = struct{}{}
			}
		}
	}
	return grp.stones
}

// index rebuilds the group arena and the hash from the raw board
// contents. It is the from-scratch counterpart of place/removeGroup,
// used when a Board is constructed from a snapshot.
func (b *Board) index() {
	b.groups = make(map[groupID]*group)
	b.nextID = 0
	b.hash = 0
	for i := range b.ids {
		b.ids[i] = noGroup
	}
	for i, c := range b.data {
		if c == game.None {
			continue
		}
		b.zobrist.update(game.PlayerMove{Player: game.Player(c), Single: game.Single(i)})
		if b.ids[i] != noGroup {
			continue
		}

		// flood fill the chain starting here
		id := b.nextID
		b.nextID++
		grp := &group{colour: c, liberties: make(map[game.Single]struct{})}
		b.groups[id] = grp
		stack := []game.Single{game.Single(i)}
		b.ids[i] = id
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			grp.stones = append(grp.stones, s)
			for _, n := range b.nbr.orth[s] {
				switch {
				case b.data[n] == game.None:
					grp.liberties[n] = struct{}{}
				case b.data[n] == c && b.ids[n] == noGroup:
					b.ids[n] = id
					stack = append(stack, n)
				}
			}
		}
	}
}

// rehash computes the hash of the board contents from scratch, without
// touching the incrementally maintained one.
func (b *Board) rehash() game.Zobrist {
	var h game.Zobrist
	for i, c := range b.data {
		switch c {
		case game.Black:
			h ^= b.table[i*2]
		case game.White:
			h ^= b.table[i*2+1]
		}
	}
	return h
}

func containsID(ids []groupID, id groupID) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}
