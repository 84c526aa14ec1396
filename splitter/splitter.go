// Package splitter adapts the memchunk engine for text pipelines that feed
// tokenizers or embedding models: it cuts a string into delimiter-bounded
// spans and stamps each span with a token count, so callers can pack spans
// against a model's context budget without re-tokenizing.
package splitter

import (
	memchunk "github.com/memchunk/memchunk-go"
)

// Span is one segment of the input text together with its byte range and
// token count. Text aliases the input string's backing memory only through
// slicing, so spans stay valid independently of the Splitter.
type Span struct {
	Text   string // The segment text
	Start  int    // Byte offset of the first byte within the input
	End    int    // Byte offset one past the last byte
	Tokens int    // Token count per the configured TokenCounter
}

// Option is a function that configures a Splitter.
type Option func(*config) error

type config struct {
	counter    TokenCounter
	engineOpts []memchunk.Option
}

// WithChunkSize sets the target span size in bytes. The default is
// memchunk.DefaultTargetSize.
func WithChunkSize(size int) Option {
	return func(c *config) error {
		c.engineOpts = append(c.engineOpts, memchunk.WithTargetSize(size))

		return nil
	}
}

// WithDelimiters sets the delimiter bytes that span boundaries prefer. The
// default is memchunk.DefaultDelimiters.
func WithDelimiters(delimiters []byte) Option {
	return func(c *config) error {
		c.engineOpts = append(c.engineOpts, memchunk.WithDelimiters(delimiters))

		return nil
	}
}

// WithPrefixMode keeps the boundary byte at the start of the following span
// instead of at the end of the current one.
func WithPrefixMode() Option {
	return func(c *config) error {
		c.engineOpts = append(c.engineOpts, memchunk.WithPrefixMode())

		return nil
	}
}

// WithTokenCounter sets the token counting strategy. The default is
// HeuristicTokenCounter.
func WithTokenCounter(counter TokenCounter) Option {
	return func(c *config) error {
		c.counter = counter

		return nil
	}
}

// Splitter splits text into bounded spans and counts tokens per span.
// A Splitter is immutable after construction and safe for concurrent use.
type Splitter struct {
	counter    TokenCounter
	engineOpts []memchunk.Option
}

// New creates a Splitter with the given options.
func New(opts ...Option) (*Splitter, error) {
	cfg := config{
		counter: HeuristicTokenCounter{},
	}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	// Surface bad engine options here rather than on the first Split.
	if _, err := memchunk.NewChunker(nil, cfg.engineOpts...); err != nil {
		return nil, err
	}

	return &Splitter{
		counter:    cfg.counter,
		engineOpts: cfg.engineOpts,
	}, nil
}

// Split cuts text into spans at preferred delimiter boundaries and stamps
// each span with its token count. Concatenating the span texts in order
// reproduces the input exactly.
func (s *Splitter) Split(text string) ([]Span, error) {
	if len(text) == 0 {
		return nil, nil
	}

	data := []byte(text)

	offsets, err := memchunk.ChunkOffsets(data, s.engineOpts...)
	if err != nil {
		return nil, err
	}

	spans := make([]Span, len(offsets))
	for i, o := range offsets {
		spans[i] = Span{
			Text:   text[o.Start:o.End],
			Start:  o.Start,
			End:    o.End,
			Tokens: s.counter.Count(data[o.Start:o.End]),
		}
	}

	return spans, nil
}
