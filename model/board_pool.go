package model

import "sync"

// BoardToPool returns a discarded generation to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles the storage of discarded generations
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get returns an all-dead board of the given size. A nil pool allocates a fresh one.
func (p *BoardPool) Get(width, height int) *Board {
	if p == nil {
		return newBoard(width, height)
	}
	b := p.pool.Get().(*Board)
	b.reset(width, height)
	return b
}

// Put hands a board back to the pool; the caller must not use it afterwards
func (p *BoardPool) Put(b *Board) {
	p.pool.Put(b)
}
