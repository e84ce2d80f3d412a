// Package heap implements a generic binary max-heap with support for removing
// an arbitrary stored value in O(log n) time. The heap is ordered by a
// caller-supplied three-way comparator; the element the comparator ranks
// highest is always at the root.
//
// Alongside the element array the heap maintains an index lookup mapping each
// stored value to the set of array positions currently holding it. The lookup
// is what makes Remove logarithmic instead of a linear scan, and it tracks
// duplicate values with their full multiplicity.
//
// Key features:
//   - Generic implementation for any comparable element type
//   - O(log n) insertion, extraction and arbitrary removal
//   - O(1) peek and size queries
//   - Duplicate values supported; removal picks any one equal element
//
// Basic usage:
//
//	// Natural ordering: the largest value has the highest priority.
//	h := heap.New[int]()
//	h.Push(3)
//	h.Push(7)
//	h.Push(5)
//
//	top, _ := h.Pop() // 7
//
//	// Custom ordering via a three-way comparator.
//	tasks := heap.NewFunc[Task](func(a, b Task) int {
//	    return cmp.Compare(a.Priority, b.Priority)
//	})
//
// Pop and Peek return ErrEmptyHeap when the heap is empty, and Remove returns
// ErrValueNotFound when no equal value is stored; callers on hot paths are
// expected to check IsEmpty or Len instead of relying on the errors.
//
// A Heap is not safe for concurrent use. Callers that share a heap across
// goroutines must synchronize all operations externally.
package heap
