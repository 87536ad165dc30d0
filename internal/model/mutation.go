// Package model defines the data structures shared by the score gate.
package model

// MutationStatus is the detection status PIT records for a single mutation.
type MutationStatus string

// Statuses written by PIT. Unknown values are kept verbatim.
const (
	StatusKilled      MutationStatus = "KILLED"
	StatusSurvived    MutationStatus = "SURVIVED"
	StatusNoCoverage  MutationStatus = "NO_COVERAGE"
	StatusTimedOut    MutationStatus = "TIMED_OUT"
	StatusMemoryError MutationStatus = "MEMORY_ERROR"
	StatusRunError    MutationStatus = "RUN_ERROR"
	StatusNonViable   MutationStatus = "NON_VIABLE"
)

// KnownStatuses lists PIT statuses in display order.
var KnownStatuses = []MutationStatus{
	StatusKilled,
	StatusSurvived,
	StatusNoCoverage,
	StatusTimedOut,
	StatusMemoryError,
	StatusRunError,
	StatusNonViable,
}

// Undetected reports whether the status means tests never noticed the mutation.
func (s MutationStatus) Undetected() bool {
	return s == StatusSurvived || s == StatusNoCoverage
}

// MutationRecord is one mutation recorded in a PIT mutations.xml report.
type MutationRecord struct {
	Status        MutationStatus `json:"status" yaml:"status"`
	Detected      bool           `json:"detected" yaml:"detected"`
	SourceFile    string         `json:"sourceFile,omitempty" yaml:"sourceFile,omitempty"`
	MutatedClass  string         `json:"mutatedClass,omitempty" yaml:"mutatedClass,omitempty"`
	MutatedMethod string         `json:"mutatedMethod,omitempty" yaml:"mutatedMethod,omitempty"`
	LineNumber    int            `json:"lineNumber,omitempty" yaml:"lineNumber,omitempty"`
	Mutator       string         `json:"mutator,omitempty" yaml:"mutator,omitempty"`
	KillingTest   string         `json:"killingTest,omitempty" yaml:"killingTest,omitempty"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
}
