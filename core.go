package memchunk

import "bytes"

// tableThreshold is the delimiter count above which the boundary search
// switches from chained byte scans to the 256-entry lookup table.
const tableThreshold = 3

// ChunkerCore implements zero-allocation delimiter-bounded split-point
// computation. It provides a low-level FindSplit API for performance-critical
// code where managing the buffer and cursor manually is acceptable.
//
// A ChunkerCore holds no mutable state after construction and is safe for
// concurrent use.
//
// For a more convenient iterator API, use Chunker instead.
type ChunkerCore struct {
	// Lookup table for the large-set strategy (valid only when useTable is set)
	table [256]bool

	// Config fields (read-only after initialization)
	delimiters []byte
	pattern    []byte
	targetSize int
	prefixMode bool
	useTable   bool
}

// NewChunkerCore creates a new ChunkerCore with the given options.
// This is a zero-allocation API - the caller manages the buffer and cursor.
func NewChunkerCore(opts ...Option) (*ChunkerCore, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	core := newChunkerCoreWithConfig(&cfg)

	return &core, nil
}

// newChunkerCoreWithConfig builds a core from an already validated config.
func newChunkerCoreWithConfig(cfg *config) ChunkerCore {
	core := ChunkerCore{
		delimiters: cfg.delimiters,
		pattern:    cfg.pattern,
		targetSize: cfg.targetSize,
		prefixMode: cfg.prefixMode,
	}

	if len(cfg.delimiters) > tableThreshold {
		core.table = buildTable(cfg.delimiters)
		core.useTable = true
	}

	return core
}

// buildTable builds the 256-entry membership table for a delimiter set.
func buildTable(delimiters []byte) [256]bool {
	var table [256]bool
	for _, d := range delimiters {
		table[d] = true
	}

	return table
}

// FindSplit returns the end (exclusive) of the first chunk of data.
//
// When len(data) is at most the target size, the whole input is the final
// chunk and len(data) is returned. Otherwise the last boundary within the
// first targetSize bytes decides the split point; a window holding no
// boundary yields a hard split of exactly targetSize bytes.
//
// This is a zero-allocation API. The caller is responsible for:
//  1. Providing the data buffer
//  2. Tracking the absolute cursor across multiple calls
//
// FindSplit never returns 0 for non-empty data, so the caller's cursor
// always advances.
//
// Example usage:
//
//	core, _ := NewChunkerCore(WithTargetSize(4096))
//	for cursor := 0; cursor < len(data); {
//	    end := cursor + core.FindSplit(data[cursor:])
//	    processChunk(data[cursor:end])
//	    cursor = end
//	}
func (c *ChunkerCore) FindSplit(data []byte) int {
	if len(data) <= c.targetSize {
		return len(data)
	}

	window := data[:c.targetSize]

	if c.pattern != nil {
		return c.findPatternSplit(window)
	}

	i := c.findLastDelimiter(window)
	if i < 0 {
		return c.targetSize
	}

	if c.prefixMode {
		// The rightmost boundary sitting at the window start would
		// produce an empty chunk and stall the cursor; treat the
		// window as having no usable boundary.
		if i == 0 {
			return c.targetSize
		}

		return i
	}

	return i + 1
}

// findPatternSplit locates the last occurrence of the pattern that fits
// entirely within the window. Occurrences straddling the window end cannot
// match inside the slice, so containment needs no extra check.
func (c *ChunkerCore) findPatternSplit(window []byte) int {
	s := bytes.LastIndex(window, c.pattern)
	if s < 0 {
		return c.targetSize
	}

	if c.prefixMode {
		if s == 0 {
			return c.targetSize
		}

		return s
	}

	return s + len(c.pattern)
}

// findLastDelimiter returns the highest index in window holding a delimiter
// byte, or -1 if there is none.
//
// Sets of up to three delimiters use chained bytes.LastIndexByte scans, each
// covering only the suffix past the best match so far. Larger sets fall back
// to the lookup table.
func (c *ChunkerCore) findLastDelimiter(window []byte) int {
	if c.useTable {
		return c.findLastTable(window)
	}

	switch len(c.delimiters) {
	case 0:
		return -1
	case 1:
		return bytes.LastIndexByte(window, c.delimiters[0])
	case 2:
		return lastIndexByte2(window, c.delimiters[0], c.delimiters[1])
	default:
		return lastIndexByte3(window, c.delimiters[0], c.delimiters[1], c.delimiters[2])
	}
}

// lastIndexByte2 returns the last index of a or b in window, or -1.
func lastIndexByte2(window []byte, a, b byte) int {
	best := bytes.LastIndexByte(window, a)
	if j := bytes.LastIndexByte(window[best+1:], b); j >= 0 {
		best += 1 + j
	}

	return best
}

// lastIndexByte3 returns the last index of a, b or c in window, or -1.
func lastIndexByte3(window []byte, a, b, c byte) int {
	best := lastIndexByte2(window, a, b)
	if j := bytes.LastIndexByte(window[best+1:], c); j >= 0 {
		best += 1 + j
	}

	return best
}

// findLastTable scans the window backwards using the membership table.
func (c *ChunkerCore) findLastTable(window []byte) int {
	// Unroll 8x. The table is accessed through the receiver; copying a
	// 256-byte array into a local would cost more than it saves.
	i := len(window) - 1
	for ; i >= 7; i -= 8 {
		// 1
		if c.table[window[i]] {
			return i
		}
		// 2
		if c.table[window[i-1]] {
			return i - 1
		}
		// 3
		if c.table[window[i-2]] {
			return i - 2
		}
		// 4
		if c.table[window[i-3]] {
			return i - 3
		}
		// 5
		if c.table[window[i-4]] {
			return i - 4
		}
		// 6
		if c.table[window[i-5]] {
			return i - 5
		}
		// 7
		if c.table[window[i-6]] {
			return i - 6
		}
		// 8
		if c.table[window[i-7]] {
			return i - 7
		}
	}

	for ; i >= 0; i-- {
		if c.table[window[i]] {
			return i
		}
	}

	return -1
}

// TargetSize returns the configured target chunk size.
func (c *ChunkerCore) TargetSize() int {
	return c.targetSize
}

// Delimiters returns a copy of the configured delimiter set. It is nil when
// the core was configured with a pattern.
func (c *ChunkerCore) Delimiters() []byte {
	if c.delimiters == nil {
		return nil
	}

	return append([]byte(nil), c.delimiters...)
}

// Pattern returns a copy of the configured pattern, or nil when the core
// splits on a delimiter set.
func (c *ChunkerCore) Pattern() []byte {
	if c.pattern == nil {
		return nil
	}

	return append([]byte(nil), c.pattern...)
}

// PrefixMode reports whether boundaries are kept at the start of the
// following chunk.
func (c *ChunkerCore) PrefixMode() bool {
	return c.prefixMode
}
