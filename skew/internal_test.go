package skew

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks the whole tree verifying heap order, parent/child
// consistency and the size count.
func checkInvariants(t *testing.T, h *Heap[int, int]) {
	t.Helper()

	if h.root == nil {
		require.Equal(t, 0, h.size)
		return
	}
	require.Nil(t, h.root.parent)

	count := 0
	var walk func(e *Entry[int, int])
	walk = func(e *Entry[int, int]) {
		count++
		require.False(t, e.left != nil && e.left == e.right)
		for _, c := range []*Entry[int, int]{e.left, e.right} {
			if c == nil {
				continue
			}
			require.Same(t, e, c.parent)
			require.LessOrEqual(t, h.compare(e.key, c.key), 0)
			walk(c)
		}
	}
	walk(h.root)
	require.Equal(t, h.size, count)
}

func TestInvariantsAfterRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := New[int, int]()
	var held []*Entry[int, int]

	pick := func() int { return rng.Intn(len(held)) }

	for i := 0; i < 2000; i++ {
		switch op := rng.Intn(10); {
		case op < 5 || len(held) == 0:
			e := h.Insert(rng.Intn(1000), i).(*Entry[int, int])
			held = append(held, e)
		case op < 7:
			e, err := h.ExtractMinimum()
			require.NoError(t, err)
			for j, x := range held {
				if x == e {
					held = append(held[:j], held[j+1:]...)
					break
				}
			}
		case op < 9:
			j := pick()
			e := held[j]
			require.NoError(t, h.DecreaseKey(e, e.key-rng.Intn(100)))
		default:
			j := pick()
			require.NoError(t, h.Delete(held[j]))
			held = append(held[:j], held[j+1:]...)
		}

		if i%50 == 0 {
			checkInvariants(t, h)
		}
	}
	checkInvariants(t, h)
}

func TestInvariantsAfterUnion(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a := New[int, int]()
	b := New[int, int]()
	for i := 0; i < 200; i++ {
		a.Insert(rng.Intn(500), i)
		b.Insert(rng.Intn(500), i)
	}

	require.NoError(t, a.Union(b))

	checkInvariants(t, a)
	checkInvariants(t, b)
	require.Equal(t, 400, a.size)
	require.Equal(t, 0, b.size)
}

func TestLinkTieGoesToSecondArgument(t *testing.T) {
	h := New[int, int]()
	a := &Entry[int, int]{key: 5, value: 1}
	b := &Entry[int, int]{key: 5, value: 2}

	root := h.link(a, b)
	require.Same(t, b, root)
}

func TestStampAdvancesOnEveryMutation(t *testing.T) {
	h := New[int, int]()

	before := h.stamp
	e := h.Insert(3, 0)
	require.Greater(t, h.stamp, before)

	before = h.stamp
	require.NoError(t, h.DecreaseKey(e, 2))
	require.Greater(t, h.stamp, before)

	before = h.stamp
	_, err := h.ExtractMinimum()
	require.NoError(t, err)
	require.Greater(t, h.stamp, before)

	before = h.stamp
	h.Clear()
	require.Greater(t, h.stamp, before)

	// Reads leave the stamp alone.
	before = h.stamp
	_, _ = h.Minimum()
	_ = h.Len()
	_ = h.Holds(e)
	require.Equal(t, before, h.stamp)
}
