package game

import (
	"sync"
	"unsafe"
)

type iterKey struct{ m, n int32 }

var (
	iterLock sync.Mutex
	iterPool = make(map[iterKey]*sync.Pool)
)

func borrowIterator(m, n int32) [][]Colour {
	iterLock.Lock()
	p, ok := iterPool[iterKey{m, n}]
	iterLock.Unlock()
	if ok {
		return p.Get().([][]Colour)
	}
	return make([][]Colour, m)
}

// ReturnIterator returns an iterator acquired by MakeIterator to the pool.
func ReturnIterator(m, n int32, it [][]Colour) {
	k := iterKey{m, n}
	iterLock.Lock()
	p, ok := iterPool[k]
	if !ok {
		p = &sync.Pool{
			New: func() interface{} { return make([][]Colour, m) },
		}
		iterPool[k] = p
	}
	iterLock.Unlock()
	p.Put(it)
}

// MakeIterator returns a 2D iterator over a rowmajor board of m×n
// colours. The rows are views over the backing slice, not copies, so
// writes through the iterator are writes to the board. Iterators come
// from a pool; call ReturnIterator when done.
func MakeIterator(board []Colour, m, n int32) (retVal [][]Colour) {
	retVal = borrowIterator(m, n)
	for i := range retVal {
		retVal[i] = unsafe.Slice(&board[int32(i)*n], n)
	}
	return retVal
}
