package heap

import (
	"cmp"
	"errors"
)

// Common errors that can be returned by heap operations.
var (
	ErrEmptyHeap     = errors.New("heap: heap is empty")
	ErrValueNotFound = errors.New("heap: value not found")
)

// Heap is a binary max-heap ordered by a three-way comparator. The zero value
// is not usable; construct heaps with New or NewFunc.
type Heap[T comparable] struct {
	items   []T
	indexes map[T]map[int]struct{}
	compare func(a, b T) int
}

// New creates an empty heap ordered by the natural ordering of T, with the
// largest value at the root.
func New[T cmp.Ordered]() *Heap[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc creates an empty heap ordered by compare. The comparator must
// define a total order over T: it returns a positive value when a outranks b,
// a negative value when b outranks a, and zero when they rank equally. The
// value the comparator ranks highest is kept at the root.
func NewFunc[T comparable](compare func(a, b T) int) *Heap[T] {
	return &Heap[T]{
		indexes: make(map[T]map[int]struct{}),
		compare: compare,
	}
}

// Len returns the number of values in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no values.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

// Push inserts v into the heap.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.track(v, len(h.items)-1)
	h.up(len(h.items) - 1)
}

// Peek returns the highest-priority value without removing it. It returns
// ErrEmptyHeap if the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.items[0], nil
}

// Pop removes and returns the highest-priority value. It returns
// ErrEmptyHeap if the heap is empty.
func (h *Heap[T]) Pop() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	top := h.items[0]
	h.removeAt(0)
	return top, nil
}

// Remove removes one stored value equal to v. When several equal values are
// stored, which one is removed is unspecified. Equality is Go value equality,
// the same relation the lookup map uses. It returns ErrValueNotFound if no
// equal value is stored; the heap is not mutated on failure.
func (h *Heap[T]) Remove(v T) error {
	set, ok := h.indexes[v]
	if !ok {
		return ErrValueNotFound
	}
	// Index sets are never kept empty, so this picks an arbitrary member.
	var i int
	for i = range set {
		break
	}
	h.removeAt(i)
	return nil
}

// removeAt deletes the element at index i. The last element takes the vacated
// slot and is sifted in whichever direction restores heap order; only one of
// the two sifts ever moves it. All slice and lookup mutation happens through
// swap, track and untrack so the two structures cannot drift apart.
func (h *Heap[T]) removeAt(i int) {
	last := len(h.items) - 1
	h.swap(i, last)
	h.untrack(h.items[last], last)
	clear(h.items[last:])
	h.items = h.items[:last]
	if i != last {
		h.down(i)
		h.up(i)
	}
}

// swap exchanges the values at i and j and rewrites their lookup entries.
func (h *Heap[T]) swap(i, j int) {
	if i == j {
		return
	}
	h.untrack(h.items[i], i)
	h.untrack(h.items[j], j)
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.track(h.items[i], i)
	h.track(h.items[j], j)
}

// track records that index i currently holds v.
func (h *Heap[T]) track(v T, i int) {
	set, ok := h.indexes[v]
	if !ok {
		set = make(map[int]struct{})
		h.indexes[v] = set
	}
	set[i] = struct{}{}
}

// untrack drops index i from v's index set, removing the set once empty.
func (h *Heap[T]) untrack(v T, i int) {
	set := h.indexes[v]
	delete(set, i)
	if len(set) == 0 {
		delete(h.indexes, v)
	}
}

// up moves the element at index i toward the root while it outranks its
// parent.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.compare(h.items[i], h.items[parent]) <= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i toward the leaves while either child
// outranks it, descending into the higher-ranked child. Ties between the
// children break toward the left.
func (h *Heap[T]) down(i int) {
	for {
		top := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(h.items) && h.compare(h.items[left], h.items[top]) > 0 {
			top = left
		}
		if right < len(h.items) && h.compare(h.items[right], h.items[top]) > 0 {
			top = right
		}
		if top == i {
			return
		}
		h.swap(i, top)
		i = top
	}
}
