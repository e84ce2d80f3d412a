// Package priority implements a keyed priority queue: a collection of
// key-value pairs ordered by the priority of their values, with O(1) lookup
// and in-place priority updates by key.
//
// The queue is a binary heap whose entries carry their own array index,
// paired with a key map. Ordering comes from a user-supplied less function
// over values; less(a, b) reports whether a has higher priority than b, so
// the same queue works as a min-heap or max-heap depending on the function.
//
// Key features:
//   - Generic over any comparable key type and any value type
//   - O(log n) insertion, removal and priority update
//   - O(1) peek and key lookup
//   - Setting an existing key re-prioritizes it in place
//
// Basic usage:
//
//	// Smaller deadline = higher priority.
//	q := priority.NewQueue[string, int](func(a, b int) bool {
//	    return a < b
//	})
//
//	q.Set("backup", 30)
//	q.Set("compact", 10)
//	q.Set("flush", 20)
//
//	key, deadline, ok := q.Pop() // "compact", 10, true
//
//	q.Set("backup", 5) // moves "backup" ahead of "flush"
//	q.Remove("flush")
//
// Unlike the heap package at the module root, which stores bare values and
// removes by value, this queue addresses entries by key and reports misses
// with a boolean rather than an error, since looking up an absent key is an
// ordinary miss rather than a misuse.
//
// A Queue is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
package priority
