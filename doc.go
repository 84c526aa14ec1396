// Package memchunk provides high-performance splitting of byte buffers into
// bounded-size chunks that prefer to end at delimiter boundaries.
//
// # Overview
//
// memchunk divides a buffer into chunks of at most a target size, cutting at
// the last configured delimiter within each window instead of at an
// arbitrary offset. Buffers with no delimiter in a window fall back to hard
// splits of exactly the target size, so chunk sizes stay bounded no matter
// the input. Typical uses are pre-segmenting text for tokenization or
// embedding pipelines and framing large payloads for transport.
//
// This implementation offers:
//   - Zero-copy chunks: every chunk is a view into the original buffer
//   - Delimiter sets of any size: small sets use vectorized byte scans,
//     larger sets a 256-entry lookup table
//   - Multi-byte patterns: split after a whole token such as "\r\n" or "END"
//   - Dual API: convenient iterator or zero-allocation split-point core
//
// # Quick Start
//
// Iterator API:
//
//	chunker, _ := memchunk.NewChunker(data, memchunk.WithTargetSize(4096))
//	for {
//	    chunk, err := chunker.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // Process chunk
//	}
//
// Offset collection, for callers that only need the boundaries:
//
//	offsets, _ := memchunk.ChunkOffsets(data, memchunk.WithDelimiters([]byte("\n")))
//	for _, o := range offsets {
//	    // Process data[o.Start:o.End]
//	}
//
// Zero-allocation API for performance-critical code:
//
//	core, _ := memchunk.NewChunkerCore(memchunk.WithTargetSize(4096))
//	for cursor := 0; cursor < len(data); {
//	    end := cursor + core.FindSplit(data[cursor:])
//	    // Process data[cursor:end]
//	    cursor = end
//	}
//
// # Algorithm
//
// Chunking is a greedy single pass. Each step looks at the window of at most
// targetSize bytes past the cursor:
//  1. Remainder: when at most targetSize bytes remain, they form the final chunk
//  2. Boundary split: otherwise the chunk ends after the last delimiter in
//     the window (before it in prefix mode)
//  3. Hard split: a window without a delimiter yields exactly targetSize bytes
//
// The boundary search runs backwards so each window is scanned at most once.
// Sets of up to three delimiters use bytes.LastIndexByte, which dispatches
// to vectorized scans on common platforms; larger sets use a byte-indexed
// membership table built once at construction.
//
// # Thread Safety
//
// A Chunker carries a cursor and must not be shared between goroutines
// without synchronization. Independent instances are fully isolated and may
// chunk the same buffer concurrently; the buffer itself is never written.
// ChunkerCore is immutable after construction and safe for concurrent use.
// For high-throughput scenarios, use ChunkerPool to recycle instances.
//
// # Performance
//
// The iterator performs no copies and no allocations per chunk; offset
// collection allocates only the result slice. Throughput is dominated by
// the underlying byte scans, which run at memory bandwidth for small
// delimiter sets.
package memchunk
