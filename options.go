package memchunk

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTargetSize is returned when targetSize is zero or negative.
	ErrInvalidTargetSize = errors.New("targetSize must be greater than 0")

	// ErrEmptyPattern is returned when an empty pattern is configured.
	ErrEmptyPattern = errors.New("pattern must not be empty")

	// ErrDelimitersAndPattern is returned when both a delimiter set and a
	// pattern are configured on the same chunker.
	ErrDelimitersAndPattern = errors.New("delimiters and pattern are mutually exclusive")
)

// DefaultTargetSize is the default target chunk size (4 KiB).
const DefaultTargetSize = 4096

// DefaultDelimiters returns the default delimiter set: '\n', '.' and '?'.
// The returned slice is a fresh copy on every call.
func DefaultDelimiters() []byte {
	return []byte{'\n', '.', '?'}
}

// Option is a function that configures a Chunker or ChunkerPool.
type Option func(*config) error

// config holds the configuration for chunking.
type config struct {
	targetSize int
	delimiters []byte
	pattern    []byte
	prefixMode bool

	// hasDelimiters records an explicit WithDelimiters call so that an
	// empty set is honored instead of being replaced by the default.
	hasDelimiters bool
}

// defaultConfig returns a config populated with the package defaults.
func defaultConfig() config {
	return config{
		targetSize: DefaultTargetSize,
	}
}

// validate checks that the configuration is valid and fills in the default
// delimiter set when neither delimiters nor a pattern were configured.
func (c *config) validate() error {
	if c.targetSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTargetSize, c.targetSize)
	}

	if c.pattern != nil && c.hasDelimiters {
		return ErrDelimitersAndPattern
	}

	if c.pattern == nil && !c.hasDelimiters {
		c.delimiters = DefaultDelimiters()
	}

	return nil
}

// WithTargetSize sets the target chunk size in bytes.
func WithTargetSize(size int) Option {
	return func(c *config) error {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidTargetSize, size)
		}

		c.targetSize = size

		return nil
	}
}

// WithDelimiters sets the delimiter bytes that chunk boundaries prefer.
// The slice is retained without copying; callers must not modify it while
// the chunker is in use.
//
// An empty set is valid and disables boundary search entirely: every chunk
// before the final one is then a hard split of exactly the target size.
func WithDelimiters(delimiters []byte) Option {
	return func(c *config) error {
		c.delimiters = delimiters
		c.hasDelimiters = true

		return nil
	}
}

// WithPattern sets a multi-byte pattern as the boundary unit instead of a
// delimiter set. The chunker splits after the last occurrence of the
// pattern that fits entirely within the search window.
func WithPattern(pattern []byte) Option {
	return func(c *config) error {
		if len(pattern) == 0 {
			return ErrEmptyPattern
		}

		c.pattern = pattern

		return nil
	}
}

// WithPrefixMode keeps the boundary byte or pattern at the start of the
// following chunk instead of at the end of the current one.
func WithPrefixMode() Option {
	return func(c *config) error {
		c.prefixMode = true

		return nil
	}
}
