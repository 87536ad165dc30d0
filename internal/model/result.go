package model

// Outcome is the verdict of comparing a score against the baseline.
type Outcome string

const (
	// OutcomeBaselineEstablished means no baseline existed before this run.
	OutcomeBaselineEstablished Outcome = "baseline_established"
	// OutcomeImproved means the score went up.
	OutcomeImproved Outcome = "improved"
	// OutcomeUnchanged means the score is equal to the baseline (or within tolerance).
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeRegressed means the score dropped below the baseline.
	OutcomeRegressed Outcome = "regressed"
)

// Passed reports whether the outcome lets the build continue.
func (o Outcome) Passed() bool {
	return o != OutcomeRegressed
}

// GateResult describes a single gate run.
type GateResult struct {
	Report       Path    `json:"report" yaml:"report"`
	Baseline     Path    `json:"baseline" yaml:"baseline"`
	Tally        Tally   `json:"tally" yaml:"tally"`
	Current      Score   `json:"current" yaml:"current"`
	Previous     *Score  `json:"previous,omitempty" yaml:"previous,omitempty"`
	Outcome      Outcome `json:"outcome" yaml:"outcome"`
	Passed       bool    `json:"passed" yaml:"passed"`
	Persisted    bool    `json:"persisted" yaml:"persisted"`
	DryRun       bool    `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	BaselineDiff string  `json:"baselineDiff,omitempty" yaml:"baselineDiff,omitempty"`
}
