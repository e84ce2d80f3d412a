package priority

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkConsistency asserts that the heap array, the stored indices and the
// key map all agree with each other and that heap order holds.
func checkConsistency(t *testing.T, q *Queue[int, int]) {
	t.Helper()

	require.Len(t, q.byKey, len(q.items))
	for i, it := range q.items {
		assert.Equal(t, i, it.index, "entry %v carries a stale index", it.key)
		assert.Same(t, it, q.byKey[it.key], "key map points at a different entry")
	}
	for i := range q.items {
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < len(q.items) {
				assert.False(t, q.lessAt(child, i),
					"child %d outranks parent %d", child, i)
			}
		}
	}
}

func TestQueue_ConsistencyUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	q := NewQueue[int, int](func(a, b int) bool {
		return a < b
	})
	present := make(map[int]struct{})

	for op := 0; op < 2000; op++ {
		key := rng.Intn(40)
		switch rng.Intn(3) {
		case 0:
			q.Set(key, rng.Intn(1000))
			present[key] = struct{}{}
		case 1:
			_, had := present[key]
			assert.Equal(t, had, q.Remove(key))
			delete(present, key)
		case 2:
			key, _, ok := q.Pop()
			if !ok {
				assert.Empty(t, present)
				continue
			}
			_, had := present[key]
			require.True(t, had, "popped a key that was not present")
			delete(present, key)
		}

		require.Equal(t, len(present), q.Len())
		checkConsistency(t, q)
	}
}
