package replication_test

import (
	"sync"
)

// recorder collects snapshots delivered to a subscription
type recorder struct {
	mu     sync.Mutex
	values [][]byte
}

func (r *recorder) snapshot(value []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, value)
}

func (r *recorder) all() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]byte, len(r.values))
	copy(out, r.values)
	return out
}

func (r *recorder) last() ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return nil, false
	}
	return r.values[len(r.values)-1], true
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}
