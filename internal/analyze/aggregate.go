package analyze

import "sync"

// Aggregate is the single shared totals record for one run. Exactly one
// mutex guards it for its whole lifetime; Merge is the only mutation path
// and holds the lock only for the O(1) field additions, never for a scan.
//
// The coordinator zero-initializes the aggregate before any worker starts
// and reads it only after the join barrier, so those two accesses happen
// with no worker running and need no lock of their own.
type Aggregate struct {
	mu     sync.Mutex
	totals Stats
}

// NewAggregate returns a zero-valued aggregate ready for merging.
func NewAggregate() *Aggregate {
	return &Aggregate{}
}

// Merge folds one worker's local tally into the shared totals. Merge order
// across workers is unspecified; integer addition is commutative, so the
// final totals do not depend on it.
func (a *Aggregate) Merge(local Stats) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totals.Add(local)
}

// Snapshot returns a copy of the current totals.
func (a *Aggregate) Snapshot() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.totals
}
