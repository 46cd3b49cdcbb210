package registry

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New[string, int]()
	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Keys())
}

func TestRegisterAndGet(t *testing.T) {
	r := New[string, int]()

	r.Register("one", 1)
	r.Register("two", 2)

	v, ok := r.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.Get("three")
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestRegisterOverwriteKeepsPosition(t *testing.T) {
	r := New[string, string]()

	r.Register("a", "old")
	r.Register("b", "b")
	r.Register("a", "new")

	v, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, []string{"a", "b"}, r.Keys())
	assert.Equal(t, []string{"new", "b"}, r.Values())
}

func TestKeysOrder(t *testing.T) {
	r := New[string, int]()
	for i, k := range []string{"zeta", "alpha", "mid"} {
		r.Register(k, i)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Keys())

	keys := r.Keys()
	keys[0] = "mutated"
	assert.Equal(t, "zeta", r.Keys()[0], "Keys must return a copy")
}

func TestHas(t *testing.T) {
	r := New[int, string]()
	r.Register(7, "seven")
	assert.True(t, r.Has(7))
	assert.False(t, r.Has(8))
}

func TestRangeOrderAndStop(t *testing.T) {
	r := New[string, int]()
	r.Register("a", 1)
	r.Register("b", 2)
	r.Register("c", 3)

	var seen []string
	r.Range(func(k string, _ int) bool {
		seen = append(seen, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestRangeAllowsMutation(t *testing.T) {
	r := New[string, int]()
	r.Register("a", 1)

	visited := 0
	r.Range(func(k string, v int) bool {
		visited++
		r.Register(k+"-copy", v)
		return true
	})

	assert.Equal(t, 1, visited)
	assert.Equal(t, 2, r.Len())
}

func TestGetOrCreate(t *testing.T) {
	r := New[string, *int]()

	calls := 0
	factory := func() *int {
		calls++
		v := 42
		return &v
	}

	first, created := r.GetOrCreate("k", factory)
	require.True(t, created)
	second, created := r.GetOrCreate("k", factory)
	require.False(t, created)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"k"}, r.Keys())
}

func TestGetOrCreateConcurrent(t *testing.T) {
	r := New[string, int]()

	var calls atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.GetOrCreate("shared", func() int {
				calls.Add(1)
				return 1
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, r.Len())
	assert.Len(t, r.Keys(), 1)
}
