package domain

import (
	"os"
	"time"
)

// Entry is one rotation candidate: an immediate child of a configured path
// whose kind matches the rule's target type. Entries are discovered fresh on
// every pass and never persisted.
type Entry struct {
	Path string
	Kind TargetType
	Info os.FileInfo
}

const (
	ReasonMaximumItems = "exceeds maximum-items"
	ReasonMaximumAge   = "exceeds maximum-age"
)

// Decision selects a single excess entry for removal. Decisions are produced
// oldest-first, which also defines deletion and reporting order.
type Decision struct {
	Entry  Entry
	Age    time.Time
	Reason string
}

type OutcomeStatus string

const (
	OutcomeDeleted   OutcomeStatus = "deleted"
	OutcomeSimulated OutcomeStatus = "simulated"
	OutcomeFailed    OutcomeStatus = "failed"

	// OutcomeSkipped records a path that could not be scanned at all.
	OutcomeSkipped OutcomeStatus = "skipped"
)

// Outcome is the reportable result of acting on one decision, or of failing
// to evaluate a path or rule in the first place.
type Outcome struct {
	RuleSource string
	Path       string
	Kind       TargetType
	Status     OutcomeStatus
	Reason     string
	Age        time.Time
}
