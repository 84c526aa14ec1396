package memchunk_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	memchunk "github.com/memchunk/memchunk-go"
)

func FuzzChunker(f *testing.F) {
	f.Add(
		[]byte("content to be chunked into multiple pieces. verify the chunker works correctly?"),
		16,
		[]byte(".?\n"),
		false,
	)
	f.Add([]byte("no delimiters anywhere in this input"), 8, []byte{}, false)
	f.Add([]byte("a.b.c.d.e.f.g.h"), 4, []byte(".,;:!?-+"), true)
	f.Add(make([]byte, 1024), 128, []byte("\n"), false)

	f.Fuzz(func(t *testing.T, data []byte, targetSize int, delimiters []byte, prefix bool) {
		opts := []memchunk.Option{
			memchunk.WithTargetSize(targetSize),
			memchunk.WithDelimiters(delimiters),
		}
		if prefix {
			opts = append(opts, memchunk.WithPrefixMode())
		}

		// Create chunker - it will fail if options are invalid
		c, err := memchunk.NewChunker(data, opts...)
		if err != nil {
			// Skip invalid configurations
			return
		}

		isDelimiter := func(b byte) bool {
			return bytes.IndexByte(delimiters, b) >= 0
		}

		var chunks [][]byte

		cursor := 0

		for {
			chunk, err := c.Next()
			if errors.Is(err, io.EOF) {
				break
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(chunk) == 0 {
				t.Fatal("chunk length is 0")
			}

			isLastChunk := cursor+len(chunk) == len(data)
			if !isLastChunk && len(chunk) > targetSize {
				t.Fatalf("non-final chunk length %d exceeds target size %d", len(chunk), targetSize)
			}

			// Verify the chunk is the slice of data at the cursor.
			if cursor+len(chunk) > len(data) {
				t.Fatalf("chunk is out of bounds: offset %d, length %d, data size %d", cursor, len(chunk), len(data))
			}

			if !bytes.Equal(chunk, data[cursor:cursor+len(chunk)]) {
				t.Fatal("chunk data does not match original data")
			}

			// A non-final chunk shorter than the target size must have been
			// cut at a boundary: in default mode its last byte is a
			// delimiter; in prefix mode the boundary byte leads the next
			// chunk instead.
			if !isLastChunk && len(chunk) < targetSize {
				if !prefix && !isDelimiter(chunk[len(chunk)-1]) {
					t.Fatalf("short non-final chunk %q does not end with a delimiter", chunk)
				}

				if prefix && !isDelimiter(data[cursor+len(chunk)]) {
					t.Fatalf("short non-final chunk at %d is not followed by a delimiter", cursor)
				}
			}

			chunks = append(chunks, chunk)
			cursor += len(chunk)
		}

		if cursor != len(data) {
			t.Errorf("total length mismatch: got %d, want %d", cursor, len(data))
		}

		// The offsets path must agree with the iterator chunk for chunk.
		offsets, err := memchunk.ChunkOffsets(data, opts...)
		if err != nil {
			t.Fatalf("ChunkOffsets: %v", err)
		}

		if len(offsets) != len(chunks) {
			t.Fatalf("offset count mismatch: got %d, want %d", len(offsets), len(chunks))
		}

		pos := 0
		for i, o := range offsets {
			if o.Start != pos {
				t.Fatalf("offset %d is not contiguous: start %d, want %d", i, o.Start, pos)
			}

			if o.End-o.Start != len(chunks[i]) {
				t.Fatalf("offset %d length mismatch: got %d, want %d", i, o.End-o.Start, len(chunks[i]))
			}

			pos = o.End
		}

		if pos != len(data) {
			t.Errorf("last offset end mismatch: got %d, want %d", pos, len(data))
		}
	})
}

func FuzzChunkerPattern(f *testing.F) {
	f.Add([]byte("line one\r\nline two\r\nline three"), 12, []byte("\r\n"), false)
	f.Add([]byte("aENDbENDcENDd"), 6, []byte("END"), true)
	f.Add([]byte("pattern longer than the window"), 4, []byte("the window"), false)

	f.Fuzz(func(t *testing.T, data []byte, targetSize int, pattern []byte, prefix bool) {
		opts := []memchunk.Option{
			memchunk.WithTargetSize(targetSize),
			memchunk.WithPattern(pattern),
		}
		if prefix {
			opts = append(opts, memchunk.WithPrefixMode())
		}

		c, err := memchunk.NewChunker(data, opts...)
		if err != nil {
			return
		}

		cursor := 0
		chunkCount := 0

		for {
			chunk, err := c.Next()
			if errors.Is(err, io.EOF) {
				break
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(chunk) == 0 {
				t.Fatal("chunk length is 0")
			}

			isLastChunk := cursor+len(chunk) == len(data)
			if !isLastChunk && len(chunk) > targetSize {
				t.Fatalf("non-final chunk length %d exceeds target size %d", len(chunk), targetSize)
			}

			if cursor+len(chunk) > len(data) {
				t.Fatalf("chunk is out of bounds: offset %d, length %d, data size %d", cursor, len(chunk), len(data))
			}

			if !bytes.Equal(chunk, data[cursor:cursor+len(chunk)]) {
				t.Fatal("chunk data does not match original data")
			}

			// A short non-final chunk was cut at a pattern occurrence. The
			// pattern is matched as a whole, so it sits entirely on one side
			// of the cut.
			if !isLastChunk && len(chunk) < targetSize {
				if !prefix && !bytes.HasSuffix(chunk, pattern) {
					t.Fatalf("short non-final chunk %q does not end with pattern %q", chunk, pattern)
				}

				if prefix && !bytes.HasPrefix(data[cursor+len(chunk):], pattern) {
					t.Fatalf("short non-final chunk at %d is not followed by pattern %q", cursor, pattern)
				}
			}

			cursor += len(chunk)
			chunkCount++
		}

		if cursor != len(data) {
			t.Errorf("total length mismatch: got %d, want %d", cursor, len(data))
		}

		offsets, err := memchunk.ChunkOffsets(data, opts...)
		if err != nil {
			t.Fatalf("ChunkOffsets: %v", err)
		}

		if len(offsets) != chunkCount {
			t.Errorf("offset count mismatch: got %d, want %d", len(offsets), chunkCount)
		}
	})
}

func FuzzChunkerCore(f *testing.F) {
	f.Add([]byte("some data to find a boundary in. with a sentence?"), 16, []byte(".?\n"))
	f.Add([]byte("0123456789"), 3, []byte{})

	f.Fuzz(func(t *testing.T, data []byte, targetSize int, delimiters []byte) {
		core, err := memchunk.NewChunkerCore(
			memchunk.WithTargetSize(targetSize),
			memchunk.WithDelimiters(delimiters),
		)
		if err != nil {
			return
		}

		split := core.FindSplit(data)
		if split > len(data) {
			t.Errorf("split %d exceeds data length %d", split, len(data))
		}

		if len(data) > 0 && split == 0 {
			t.Error("split is 0 for non-empty data; the cursor would stall")
		}

		if len(data) > targetSize && split > targetSize {
			t.Errorf("split %d exceeds target size %d with more data remaining", split, targetSize)
		}
	})
}
