package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-raycaster/pkg/core"
)

// Chunk is a band of full-width image rows rendered as one unit of work
type Chunk struct {
	ID     int
	Bounds image.Rectangle
}

// NewChunkGrid splits an image into bands of rowsPerChunk rows, top to
// bottom. The last band may be shorter.
func NewChunkGrid(width, height, rowsPerChunk int) []Chunk {
	if rowsPerChunk <= 0 {
		rowsPerChunk = 1
	}

	chunks := make([]Chunk, 0, (height+rowsPerChunk-1)/rowsPerChunk)
	for y0 := 0; y0 < height; y0 += rowsPerChunk {
		y1 := min(y0+rowsPerChunk, height) // Don't exceed image bounds
		chunks = append(chunks, Chunk{
			ID:     len(chunks),
			Bounds: image.Rect(0, y0, width, y1),
		})
	}
	return chunks
}

// chunkQueue hands out each chunk exactly once
type chunkQueue struct {
	mu     sync.Mutex
	chunks []Chunk
	next   int
}

func newChunkQueue(chunks []Chunk) *chunkQueue {
	return &chunkQueue{chunks: chunks}
}

// claim returns the next unclaimed chunk, or false once all are taken
func (q *chunkQueue) claim() (Chunk, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.next >= len(q.chunks) {
		return Chunk{}, false
	}
	chunk := q.chunks[q.next]
	q.next++
	return chunk, true
}

// ChunkFunc renders one chunk on behalf of worker workerID
type ChunkFunc func(workerID int, chunk Chunk) error

// WorkerPool runs a fixed number of workers over a shared chunk queue. A
// pool is reusable; workers are started per Run and joined before it returns.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run processes every chunk with fn and returns how many chunks each worker
// completed. The first error, including a numeric fault raised as a
// *core.NumericError panic inside fn, stops the other workers from claiming
// further chunks and is returned.
func (wp *WorkerPool) Run(ctx context.Context, chunks []Chunk, fn ChunkFunc) ([]int, error) {
	queue := newChunkQueue(chunks)
	completed := make([]int, wp.numWorkers)

	g, ctx := errgroup.WithContext(ctx)
	for id := 0; id < wp.numWorkers; id++ {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				chunk, ok := queue.claim()
				if !ok {
					return nil
				}

				if err := runChunk(fn, id, chunk); err != nil {
					return fmt.Errorf("worker %d, chunk %d: %w", id, chunk.ID, err)
				}
				completed[id]++
			}
		})
	}

	err := g.Wait()
	return completed, err
}

// runChunk calls fn, converting a numeric fault panic into an error
func runChunk(fn ChunkFunc, workerID int, chunk Chunk) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var numErr *core.NumericError
			if e, ok := r.(error); ok && errors.As(e, &numErr) {
				err = e
				return
			}
			panic(r)
		}
	}()

	return fn(workerID, chunk)
}
