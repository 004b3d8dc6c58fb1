package nodekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_NilReceiver(t *testing.T) {
	var s *State

	_, ok := s.KeyAt(0)
	assert.False(t, ok)

	_, ok = s.PosOf("k")
	assert.False(t, ok)

	assert.Equal(t, 0, s.Len())

	called := false
	s.Each(func(pos int, k Key) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestState_Lookups(t *testing.T) {
	st := Initialize(fakeDoc{positions: []int{0, 3}})

	require.Equal(t, 2, st.Len())

	k, ok := st.KeyAt(3)
	require.True(t, ok)

	pos, ok := st.PosOf(k)
	require.True(t, ok)
	assert.Equal(t, 3, pos)

	_, ok = st.KeyAt(7)
	assert.False(t, ok)

	_, ok = st.PosOf("no-such-key")
	assert.False(t, ok)
}

func TestState_ReverseIndexTracksReconciliation(t *testing.T) {
	prev := Initialize(fakeDoc{positions: []int{0, 1}})
	k1, _ := prev.KeyAt(1)

	// The node at 1 moves to 4.
	change := fakeChange{
		docChanged: true,
		mapFn: func(pos int) int {
			if pos == 4 {
				return 1
			}
			return pos
		},
	}
	next := Reconcile(change, prev, fakeDoc{positions: []int{0, 4}})

	pos, ok := next.PosOf(k1)
	require.True(t, ok)
	assert.Equal(t, 4, pos)

	// The old version still answers with the old position.
	pos, ok = prev.PosOf(k1)
	require.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestState_Each(t *testing.T) {
	st := Initialize(fakeDoc{positions: []int{0, 2, 6}})

	visited := make(map[int]Key)
	st.Each(func(pos int, k Key) bool {
		visited[pos] = k
		return true
	})
	assert.Len(t, visited, 3)

	// Early stop.
	count := 0
	st.Each(func(pos int, k Key) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
