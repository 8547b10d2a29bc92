package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "k", "v", time.Minute))

	got, ok, err := ms.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok, err = ms.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return base }
	require.NoError(t, ms.Set(ctx, "k", "v", time.Second))

	ms.now = func() time.Time { return base.Add(time.Second) }
	_, ok, _ := ms.Get(ctx, "k")
	assert.True(t, ok, "entry is valid at its expiry instant")

	ms.now = func() time.Time { return base.Add(2 * time.Second) }
	_, ok, _ = ms.Get(ctx, "k")
	assert.False(t, ok)

	ms.purge()
	assert.Equal(t, 0, ms.Len())
}

func TestMemoryStore_Delete(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	require.NoError(t, ms.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, ms.Delete(ctx, "k"))

	_, ok, _ := ms.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = ms.Set(ctx, key, key, time.Minute)
			_, _, _ = ms.Get(ctx, key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, ms.Len())
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	ms := NewMemoryStore()
	assert.NoError(t, ms.Close())
	assert.NoError(t, ms.Close())
}
