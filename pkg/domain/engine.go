package domain

import (
	"sort"
	"time"
)

// Scanner lists the immediate children of a path matching a target type.
// Order of the returned entries is unspecified.
type Scanner interface {
	Scan(path string, target TargetType) ([]Entry, error)
}

// Engine decides which entries of a single path are excess under a rule.
// It never touches the filesystem beyond scanning and stat calls.
type Engine struct {
	scanner  Scanner
	resolver AgeResolver

	now func() time.Time
}

func NewEngine(scanner Scanner, resolver AgeResolver) *Engine {
	return &Engine{
		scanner:  scanner,
		resolver: resolver,
		now:      time.Now,
	}
}

type agedEntry struct {
	entry Entry
	age   time.Time
}

// Evaluate scans path and returns one decision per excess entry, oldest
// first. A scan failure comes back as *PathUnavailableError; a resolver
// failure is fatal for the whole rule, not just this path.
func (e *Engine) Evaluate(path string, rule Rule) ([]Decision, error) {
	entries, err := e.scanner.Scan(path, rule.TargetType)
	if err != nil {
		return nil, err
	}

	aged := make([]agedEntry, 0, len(entries))
	for _, entry := range entries {
		age, err := e.resolver.Resolve(entry, rule.DateDetection)
		if err != nil {
			return nil, err
		}

		aged = append(aged, agedEntry{entry: entry, age: age})
	}

	// Oldest first. Stable so scan order breaks ties and dry-run output
	// matches what an actual run would delete.
	sort.SliceStable(aged, func(i, j int) bool {
		return aged[i].age.Before(aged[j].age)
	})

	var decisions []Decision

	kept := aged
	if excess := excessCount(len(aged), rule); excess > 0 {
		for _, a := range aged[:excess] {
			decisions = append(decisions, Decision{Entry: a.entry, Age: a.age, Reason: ReasonMaximumItems})
		}

		kept = aged[excess:]
	}

	if rule.MaximumAge > 0 && len(kept) >= rule.MinimumItems {
		for _, a := range kept {
			if e.ageInDays(a.age) > rule.MaximumAge {
				decisions = append(decisions, Decision{Entry: a.entry, Age: a.age, Reason: ReasonMaximumAge})
			}
		}
	}

	return decisions, nil
}

// excessCount is the number of oldest entries beyond the maximum-items
// threshold, reduced so deletion never takes the path below minimum-items.
func excessCount(total int, rule Rule) int {
	if total < rule.MinimumItems {
		return 0
	}

	excess := total - rule.MaximumItems
	if floor := total - rule.MinimumItems; excess > floor {
		excess = floor
	}

	if excess < 0 {
		return 0
	}

	return excess
}

func (e *Engine) ageInDays(t time.Time) int {
	return int(e.now().Sub(t) / (24 * time.Hour))
}
