package priority

// item is a queue entry. index is the entry's current slot in the heap
// array and is rewritten on every swap.
type item[K comparable, V any] struct {
	key   K
	value V
	index int
}

// Queue is a keyed priority queue backed by a binary heap with an O(1) key
// lookup. Keys are unique; setting an existing key updates its priority in
// place. The zero value is not usable; construct queues with NewQueue.
//
// A Queue is not safe for concurrent use.
type Queue[K comparable, V any] struct {
	items []*item[K, V]
	byKey map[K]*item[K, V]
	less  func(a, b V) bool
}

// NewQueue creates an empty queue ordered by less, which reports whether a
// has higher priority than b. The highest-priority entry is returned first.
func NewQueue[K comparable, V any](less func(a, b V) bool) *Queue[K, V] {
	return &Queue[K, V]{
		byKey: make(map[K]*item[K, V]),
		less:  less,
	}
}

// Len returns the number of entries in the queue.
func (q *Queue[K, V]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[K, V]) IsEmpty() bool {
	return len(q.items) == 0
}

// Get returns the value stored under key.
func (q *Queue[K, V]) Get(key K) (V, bool) {
	it, ok := q.byKey[key]
	if !ok {
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set inserts key with the given value, or updates an existing key's value
// and re-sifts it in whichever direction its new priority requires.
func (q *Queue[K, V]) Set(key K, value V) {
	if it, ok := q.byKey[key]; ok {
		old := it.value
		it.value = value
		if q.less(value, old) {
			q.up(it.index)
		} else {
			q.down(it.index)
		}
		return
	}

	it := &item[K, V]{key: key, value: value, index: len(q.items)}
	q.items = append(q.items, it)
	q.byKey[key] = it
	q.up(it.index)
}

// Peek returns the highest-priority entry without removing it. The boolean
// is false when the queue is empty.
func (q *Queue[K, V]) Peek() (K, V, bool) {
	if len(q.items) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	it := q.items[0]
	return it.key, it.value, true
}

// Pop removes and returns the highest-priority entry. The boolean is false
// when the queue is empty.
func (q *Queue[K, V]) Pop() (K, V, bool) {
	if len(q.items) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	it := q.items[0]
	q.Remove(it.key)
	return it.key, it.value, true
}

// Remove deletes the entry stored under key, reporting whether it existed.
// The last entry takes the vacated slot and is sifted in whichever direction
// restores heap order.
func (q *Queue[K, V]) Remove(key K) bool {
	it, ok := q.byKey[key]
	if !ok {
		return false
	}

	i := it.index
	last := len(q.items) - 1
	if i != last {
		q.swap(i, last)
	}
	q.items[last] = nil
	q.items = q.items[:last]
	delete(q.byKey, key)
	if i != last {
		q.down(i)
		q.up(i)
	}
	return true
}

// swap exchanges the entries at i and j and rewrites their stored indices.
func (q *Queue[K, V]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

// lessAt compares the entries at i and j by priority.
func (q *Queue[K, V]) lessAt(i, j int) bool {
	return q.less(q.items[i].value, q.items[j].value)
}

// up moves the entry at index i toward the root while it outranks its parent.
func (q *Queue[K, V]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.lessAt(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the entry at index i toward the leaves while a child outranks
// it, descending into the higher-priority child.
func (q *Queue[K, V]) down(i int) {
	for {
		top := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(q.items) && q.lessAt(left, top) {
			top = left
		}
		if right < len(q.items) && q.lessAt(right, top) {
			top = right
		}
		if top == i {
			return
		}
		q.swap(i, top)
		i = top
	}
}
