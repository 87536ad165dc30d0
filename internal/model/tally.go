package model

import "sort"

// Tally holds the counts extracted from one or more mutation reports.
type Tally struct {
	Report    Path                   `json:"report,omitempty" yaml:"report,omitempty"`
	Total     int                    `json:"total" yaml:"total"`
	Killed    int                    `json:"killed" yaml:"killed"`
	ByStatus  map[MutationStatus]int `json:"byStatus" yaml:"byStatus"`
	Survivors []MutationRecord       `json:"survivors,omitempty" yaml:"survivors,omitempty"`
}

// NewTally creates an empty tally for the given report.
func NewTally(report Path) Tally {
	return Tally{
		Report:   report,
		ByStatus: map[MutationStatus]int{},
	}
}

// Record counts a single mutation. Undetected mutations are kept while fewer than
// maxSurvivors have been collected.
func (t *Tally) Record(record MutationRecord, maxSurvivors int) {
	if t.ByStatus == nil {
		t.ByStatus = map[MutationStatus]int{}
	}

	t.Total++
	t.ByStatus[record.Status]++

	if record.Status == StatusKilled {
		t.Killed++
	}

	if record.Status.Undetected() && len(t.Survivors) < maxSurvivors {
		t.Survivors = append(t.Survivors, record)
	}
}

// Add merges other into t. The report path of t is kept.
func (t *Tally) Add(other Tally, maxSurvivors int) {
	if t.ByStatus == nil {
		t.ByStatus = map[MutationStatus]int{}
	}

	t.Total += other.Total
	t.Killed += other.Killed

	for status, count := range other.ByStatus {
		t.ByStatus[status] += count
	}

	for _, survivor := range other.Survivors {
		if len(t.Survivors) >= maxSurvivors {
			break
		}

		t.Survivors = append(t.Survivors, survivor)
	}
}

// Score returns the kill rate of the tally.
func (t Tally) Score() Score {
	return NewScore(t.Killed, t.Total)
}

// Statuses returns the statuses present in the tally, known ones first in PIT order.
func (t Tally) Statuses() []MutationStatus {
	statuses := make([]MutationStatus, 0, len(t.ByStatus))
	seen := make(map[MutationStatus]bool, len(KnownStatuses))

	for _, status := range KnownStatuses {
		seen[status] = true

		if t.ByStatus[status] > 0 {
			statuses = append(statuses, status)
		}
	}

	var unknown []MutationStatus

	for status := range t.ByStatus {
		if !seen[status] && t.ByStatus[status] > 0 {
			unknown = append(unknown, status)
		}
	}

	sort.Slice(unknown, func(i, j int) bool {
		return unknown[i] < unknown[j]
	})

	return append(statuses, unknown...)
}
