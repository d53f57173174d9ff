// Package shardlock provides a fixed pool of mutexes indexed by key digest,
// so that first-time construction of unrelated keys never contends on a
// single global lock.
package shardlock

import "sync"

// Pool is a fixed set of mutexes. A given digest always selects the same
// mutex, so at most one goroutine runs a critical section for that digest
// while other digests proceed on their own shards.
//
// The zero Pool is not usable; construct with New.
type Pool struct {
	shards []sync.Mutex
}

// New returns a Pool of n shards. Sizes below 1 are clamped to 1.
func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{shards: make([]sync.Mutex, n)}
}

// For returns the mutex owning the given digest.
func (p *Pool) For(digest uint64) *sync.Mutex {
	return &p.shards[int(digest%uint64(len(p.shards)))]
}

// Size returns the number of shards.
func (p *Pool) Size() int { return len(p.shards) }
