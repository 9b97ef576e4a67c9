package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	v, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestGetOrCreateRunsOnce(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 42, r.GetOrCreate("x", create))
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}

func TestRemoveAndClear(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "1")
	r.Register("b", "2")
	assert.Equal(t, 2, r.Len())

	r.Remove("a")
	assert.Equal(t, 1, r.Len())
	r.Remove("a") // no-op

	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Names())
}
