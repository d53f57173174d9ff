package shardlock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/distinct_ive_go/enums/internal/shardlock"
)

func TestForIsStable(t *testing.T) {
	p := shardlock.New(8)
	for digest := uint64(0); digest < 100; digest++ {
		assert.Same(t, p.For(digest), p.For(digest))
	}
}

func TestForCoversAllShards(t *testing.T) {
	p := shardlock.New(4)
	distinct := map[*sync.Mutex]struct{}{}
	for digest := uint64(0); digest < 4; digest++ {
		distinct[p.For(digest)] = struct{}{}
	}
	assert.Len(t, distinct, 4)
}

func TestNewClampsSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "negative", n: -3, want: 1},
		{name: "zero", n: 0, want: 1},
		{name: "one", n: 1, want: 1},
		{name: "many", n: 32, want: 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := shardlock.New(tt.n)
			require.Equal(t, tt.want, p.Size())
			// Must be usable whatever the requested size was.
			mu := p.For(42)
			mu.Lock()
			mu.Unlock()
		})
	}
}

func TestShardsExcludeEachOther(t *testing.T) {
	p := shardlock.New(2)
	const perDigest = 50

	var wg sync.WaitGroup
	counters := make([]int, 2)
	for digest := uint64(0); digest < 2; digest++ {
		for i := 0; i < perDigest; i++ {
			wg.Add(1)
			go func(digest uint64) {
				defer wg.Done()
				mu := p.For(digest)
				mu.Lock()
				defer mu.Unlock()
				counters[digest]++
			}(digest)
		}
	}
	wg.Wait()

	assert.Equal(t, []int{perDigest, perDigest}, counters)
}
