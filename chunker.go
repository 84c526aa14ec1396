package memchunk

import (
	"io"
)

// Offset is the half-open byte range [Start, End) of one chunk within the
// buffer.
type Offset struct {
	Start int // Offset of the first byte of the chunk
	End   int // Offset one past the last byte of the chunk
}

// Chunker splits a byte buffer into bounded-size chunks, preferring to cut
// at delimiter boundaries rather than arbitrary offsets. Chunks are emitted
// in order via the Next() method and are views into the underlying buffer;
// no data is copied.
//
// This API allocates minimally and is suitable for most use cases.
// For zero-allocation performance-critical code, use ChunkerCore.
type Chunker struct {
	core ChunkerCore // Split-point computation (embedded by value to avoid pointer chasing)

	data   []byte // Underlying buffer
	cursor int    // Absolute offset of the next chunk
}

// NewChunker creates a new Chunker over data with the given options.
//
// The buffer is borrowed, not copied: the caller must not modify it while
// the chunker or any chunk returned by Next is in use. To hand the chunker
// its own buffer, use NewChunkerFromReader.
func NewChunker(data []byte, opts ...Option) (*Chunker, error) {
	// Use stack-allocated config to avoid heap allocation
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Chunker{
		core: newChunkerCoreWithConfig(&cfg),
		data: data,
	}, nil
}

// NewChunkerFromReader creates a new Chunker that owns its buffer, filled by
// reading r to completion. Use it when the data arrives from a stream or
// when the chunks must stay valid after the caller's buffer is gone.
func NewChunkerFromReader(r io.Reader, opts ...Option) (*Chunker, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return NewChunker(data, opts...)
}

// Next returns the next chunk.
// Returns io.EOF once the buffer is exhausted.
//
// The returned slice points into the chunker's buffer and stays valid as
// long as the buffer does. If you need to keep the data past the buffer's
// lifetime, copy it.
func (c *Chunker) Next() ([]byte, error) {
	if c.cursor >= len(c.data) {
		return nil, io.EOF
	}

	end := c.cursor + c.core.FindSplit(c.data[c.cursor:])
	chunk := c.data[c.cursor:end]
	c.cursor = end

	return chunk, nil
}

// CollectOffsets consumes the chunker and returns the offsets of all
// remaining chunks without materializing the chunk slices. Called on a
// fresh or reset chunker it covers the whole buffer.
//
// The returned ranges are contiguous and strictly increasing, and splitting
// the buffer at them yields exactly the chunks Next would have produced.
func (c *Chunker) CollectOffsets() []Offset {
	remaining := len(c.data) - c.cursor
	if remaining == 0 {
		return nil
	}

	offsets := make([]Offset, 0, remaining/c.core.targetSize+1)
	for c.cursor < len(c.data) {
		end := c.cursor + c.core.FindSplit(c.data[c.cursor:])
		offsets = append(offsets, Offset{Start: c.cursor, End: end})
		c.cursor = end
	}

	return offsets
}

// Reset rewinds the chunker to the start of its buffer so that the chunks
// can be produced again. The configuration and the delimiter lookup table
// are retained. Resetting a fresh chunker is a no-op.
func (c *Chunker) Reset() {
	c.cursor = 0
}

// rebind points the chunker at a new buffer and rewinds it.
func (c *Chunker) rebind(data []byte) {
	c.data = data
	c.cursor = 0
}

// Offset returns the current cursor position in the buffer.
func (c *Chunker) Offset() int {
	return c.cursor
}

// TargetSize returns the configured target chunk size.
func (c *Chunker) TargetSize() int {
	return c.core.TargetSize()
}

// Delimiters returns a copy of the configured delimiter set, or nil when
// the chunker splits on a pattern.
func (c *Chunker) Delimiters() []byte {
	return c.core.Delimiters()
}

// ChunkOffsets chunks data in a single call and returns the offsets of
// every chunk. It is equivalent to constructing a Chunker with the same
// options and collecting its offsets. Pattern-based splitting is selected
// with WithPattern.
func ChunkOffsets(data []byte, opts ...Option) ([]Offset, error) {
	c, err := NewChunker(data, opts...)
	if err != nil {
		return nil, err
	}

	return c.CollectOffsets(), nil
}
