package plague

import "github.com/google/uuid"

// HealthStatus is the state of one individual. Infection is permanent.
type HealthStatus uint8

const (
	Healthy HealthStatus = iota
	Infected
)

func (s HealthStatus) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Infected:
		return "infected"
	}
	return "unknown"
}

// Individual is one member of the population.
type Individual struct {
	ID     uuid.UUID
	Status HealthStatus
}

// Population is a fixed-length, row-major sequence of individuals with
// running healthy/infected counters. SetInfected is the only writer of the
// counters, so Healthy()+Infected() always equals Len().
//
// Population is not safe for concurrent use; Publisher serializes access.
type Population struct {
	individuals []Individual
	healthy     int
	infected    int
}

// NewPopulation returns n healthy individuals.
func NewPopulation(n int) *Population {
	if n < 0 {
		n = 0
	}
	p := &Population{individuals: make([]Individual, n), healthy: n}
	for i := range p.individuals {
		p.individuals[i].ID = uuid.New()
	}
	return p
}

// Len returns the group size.
func (p *Population) Len() int { return len(p.individuals) }

// Healthy returns the number of healthy individuals.
func (p *Population) Healthy() int { return p.healthy }

// Infected returns the number of infected individuals.
func (p *Population) Infected() int { return p.infected }

// StatusOf returns the status of individual i.
func (p *Population) StatusOf(i int) (HealthStatus, error) {
	if i < 0 || i >= len(p.individuals) {
		return Healthy, outOfRange(i, len(p.individuals))
	}
	return p.individuals[i].Status, nil
}

// Individual returns a copy of individual i.
func (p *Population) Individual(i int) (Individual, error) {
	if i < 0 || i >= len(p.individuals) {
		return Individual{}, outOfRange(i, len(p.individuals))
	}
	return p.individuals[i], nil
}

// SetInfected infects individual i and reports whether its status changed.
// Infecting an already infected individual is a no-op.
func (p *Population) SetInfected(i int) (bool, error) {
	if i < 0 || i >= len(p.individuals) {
		return false, outOfRange(i, len(p.individuals))
	}
	if p.individuals[i].Status == Infected {
		return false, nil
	}
	p.individuals[i].Status = Infected
	p.infected++
	p.healthy--
	return true, nil
}

// Snapshot copies the current statuses.
func (p *Population) Snapshot() Snapshot {
	statuses := make([]HealthStatus, len(p.individuals))
	for i, ind := range p.individuals {
		statuses[i] = ind.Status
	}
	return Snapshot{statuses: statuses}
}

// Recount tallies statuses with a full scan. It exists to verify the running
// counters and is never used to maintain them.
func (p *Population) Recount() (healthy, infected int) {
	for _, ind := range p.individuals {
		if ind.Status == Infected {
			infected++
			continue
		}
		healthy++
	}
	return healthy, infected
}
