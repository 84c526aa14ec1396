package memchunk

import (
	"sync"
)

// ChunkerPool is a pool of Chunker instances for reuse in high-throughput
// scenarios. It reduces allocations by recycling chunkers across buffers
// instead of creating new ones; the configuration and the delimiter lookup
// table are built once and shared by every chunker the pool hands out.
type ChunkerPool struct {
	pool sync.Pool
	opts []Option
}

// NewChunkerPool creates a new ChunkerPool with the given options.
// All chunkers created from this pool will use these options.
func NewChunkerPool(opts ...Option) (*ChunkerPool, error) {
	// Validate options by creating a test chunker
	_, err := NewChunker(nil, opts...)
	if err != nil {
		return nil, err
	}

	return &ChunkerPool{
		opts: opts,
	}, nil
}

// Get retrieves a Chunker from the pool, or creates a new one if the pool
// is empty. The chunker is bound to the given buffer and ready to use.
//
// The buffer is borrowed under the same contract as NewChunker.
func (p *ChunkerPool) Get(data []byte) (*Chunker, error) {
	if v := p.pool.Get(); v != nil {
		chunker := v.(*Chunker)
		chunker.rebind(data)
		return chunker, nil
	}

	return NewChunker(data, p.opts...)
}

// Put returns a Chunker to the pool for reuse.
// The chunker and any chunks it produced must not be used after being
// returned to the pool.
func (p *ChunkerPool) Put(c *Chunker) {
	// Clear the buffer to avoid holding a reference
	c.rebind(nil)
	p.pool.Put(c)
}
