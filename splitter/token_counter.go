package splitter

import (
	"fmt"

	"github.com/clipperhouse/uax29/sentences"
	"github.com/clipperhouse/uax29/words"
	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter defines the interface for counting tokens in a span of text.
// This abstraction allows for different tokenization strategies (e.g., words,
// sentences, subwords).
type TokenCounter interface {
	// Count returns the number of tokens in the given text according to the
	// implementation's tokenization strategy.
	Count(p []byte) int
}

// HeuristicTokenCounter estimates token counts at roughly four bytes per
// token, the usual rule of thumb for English prose under BPE tokenizers. It
// is the default counter: zero setup cost and good enough for sizing chunks.
type HeuristicTokenCounter struct{}

func (HeuristicTokenCounter) Count(p []byte) int {
	return (len(p) + 3) / 4
}

// WordTokenCounter counts Unicode words per UAX #29 segmentation.
type WordTokenCounter struct{}

func (WordTokenCounter) Count(p []byte) int {
	return len(words.SegmentAll(p))
}

// SentenceTokenCounter counts Unicode sentences per UAX #29 segmentation.
type SentenceTokenCounter struct{}

func (SentenceTokenCounter) Count(p []byte) int {
	return len(sentences.SegmentAll(p))
}

// TikTokenCounter provides accurate token counting using the tiktoken
// library, which implements the tokenization schemes used by OpenAI models.
type TikTokenCounter struct {
	tke *tiktoken.Tiktoken
}

// NewTikTokenCounter creates a new TikTokenCounter using the specified
// encoding. Common encodings include:
// - "cl100k_base" (GPT-4, ChatGPT)
// - "p50k_base" (GPT-3)
// - "r50k_base" (Codex)
func NewTikTokenCounter(encoding string) (*TikTokenCounter, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}

	return &TikTokenCounter{tke: tke}, nil
}

// Count returns the exact number of tokens in the text according to the
// configured encoding.
func (c *TikTokenCounter) Count(p []byte) int {
	return len(c.tke.Encode(string(p), nil, nil))
}
