package plague

import "slices"

// Snapshot is an immutable view of population statuses taken on the
// mutation context and handed to the engine.
type Snapshot struct {
	statuses []HealthStatus
}

// NewSnapshot builds a snapshot from statuses. The slice is copied.
func NewSnapshot(statuses []HealthStatus) Snapshot {
	return Snapshot{statuses: slices.Clone(statuses)}
}

// Len returns the number of individuals captured.
func (s Snapshot) Len() int { return len(s.statuses) }

// Status returns the captured status of i, or Healthy if i is out of range.
func (s Snapshot) Status(i int) HealthStatus {
	if i < 0 || i >= len(s.statuses) {
		return Healthy
	}
	return s.statuses[i]
}

// InfectedIndices lists the infected individuals in ascending order.
func (s Snapshot) InfectedIndices() []int {
	var out []int
	for i, st := range s.statuses {
		if st == Infected {
			out = append(out, i)
		}
	}
	return out
}

// Delta is the set of indices transitioning Healthy to Infected in one tick,
// sorted ascending without duplicates.
type Delta []int

// NewDelta sorts and de-duplicates indices in place.
func NewDelta(indices []int) Delta {
	slices.Sort(indices)
	return Delta(slices.Compact(indices))
}

// Len returns the number of indices in the delta.
func (d Delta) Len() int { return len(d) }

// Contains reports whether i is part of the delta.
func (d Delta) Contains(i int) bool {
	_, ok := slices.BinarySearch(d, i)
	return ok
}
