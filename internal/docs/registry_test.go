package docs

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Register("a.b", "X")
	r.Register("a.b.c", "Y")
	r.Register("a.b", "Z")

	snap := r.Snapshot()
	assert.Equal(t, []string{"X", "Z"}, snap["a.b"])
	assert.Equal(t, []string{"Y"}, snap["a.b.c"])
}

func TestRegistryDefaultPackageKey(t *testing.T) {
	r := NewRegistry()
	r.Register("", "Widget")

	snap := r.Snapshot()
	assert.Equal(t, []string{"Widget"}, snap[""])
}

func TestRegistryDoesNotDeduplicate(t *testing.T) {
	r := NewRegistry()
	r.Register("a", "X")
	r.Register("a", "X")

	assert.Equal(t, []string{"X", "X"}, r.Snapshot()["a"])
}

func TestRegistrySnapshotIsACopy(t *testing.T) {
	r := NewRegistry()
	r.Register("a", "X")

	snap := r.Snapshot()
	snap["a"][0] = "mutated"
	snap["b"] = []string{"Y"}

	fresh := r.Snapshot()
	assert.Equal(t, []string{"X"}, fresh["a"])
	assert.NotContains(t, fresh, "b")
}

func TestRegistryConcurrentRegistration(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Register("pkg", fmt.Sprintf("T%d", i))
		}(i)
	}
	wg.Wait()

	require.Len(t, r.Snapshot()["pkg"], 50)
}
