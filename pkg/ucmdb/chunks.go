package ucmdb

import "context"

// ChunkPage is the response of the call that starts a chunked result set:
// whatever items the initial response carried, the handle identifying the
// stored result, and how many chunks the server split it into. An empty
// Handle means the result fit in the initial response and no chunks exist.
type ChunkPage[T any] struct {
	Items       []T
	Handle      string
	TotalChunks int
}

// FirstFetchFunc starts a chunked result set (running a view, calculating a
// compliance report).
type FirstFetchFunc[T any] func(ctx context.Context) (*ChunkPage[T], error)

// ChunkFetchFunc retrieves one chunk of a stored result by 1-based index.
type ChunkFetchFunc[T any] func(ctx context.Context, handle string, index int) ([]T, error)

// CollectAll drives a chunked result protocol to completion and returns one
// flat slice: the initial response's items followed by the items of chunks
// 1..TotalChunks, in chunk order, preserving each chunk's internal order. No
// deduplication is performed; if the backend serves overlapping chunks while
// the underlying data mutates, the duplicates are kept as-is.
//
// Failure handling favors availability over strictness. A failed initial
// call yields an empty result rather than an error, and a failed individual
// chunk is skipped while the remaining chunks are still collected — so a
// degraded aggregation is indistinguishable from a complete one. Callers
// that need to tell the two apart should use CollectAllStats.
func CollectAll[T any](ctx context.Context, first FirstFetchFunc[T], chunk ChunkFetchFunc[T]) []T {
	items, _ := CollectAllStats(ctx, first, chunk)

	return items
}

// CollectAllStats is CollectAll with a count of dropped chunks, letting
// callers distinguish a partial aggregation from a complete one. A failed
// initial call reports zero items and zero drops, since the chunk count is
// unknown at that point.
func CollectAllStats[T any](ctx context.Context, first FirstFetchFunc[T], chunk ChunkFetchFunc[T]) ([]T, int) {
	page, err := first(ctx)
	if err != nil || page == nil {
		return nil, 0
	}

	items := append([]T(nil), page.Items...)
	if page.Handle == "" {
		return items, 0
	}

	dropped := 0

	// Chunks are fetched strictly sequentially in index order; aggregation
	// order must match chunk order.
	for index := 1; index <= page.TotalChunks; index++ {
		chunkItems, err := chunk(ctx, page.Handle, index)
		if err != nil {
			dropped++

			continue
		}

		items = append(items, chunkItems...)
	}

	return items, dropped
}
