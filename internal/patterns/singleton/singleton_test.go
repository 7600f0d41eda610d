package singleton

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestInstance_IsShared(t *testing.T) {
	assert.Same(t, Instance(), Instance())
}

// TestLazy_ConcurrentFirstUse verifies the initializer runs once even when
// many goroutines race for the first access.
func TestLazy_ConcurrentFirstUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	lazy := NewLazy(func() *Resource {
		calls.Add(1)
		return &Resource{}
	})

	const workers = 64
	results := make([]*Resource, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = lazy.Get()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		require.Same(t, results[0], r)
	}
}

func TestResourceHolder_AnnouncesOnce(t *testing.T) {
	var buf bytes.Buffer
	holder := NewResourceHolder(&buf)
	holder.Get()
	holder.Get()

	assert.Equal(t, "Initializing resources...\n", buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	want := "Initializing resources...\n" +
		"Doing something with the singleton instance.\n" +
		"Both instances are the same.\n"
	assert.Equal(t, want, buf.String())
}
