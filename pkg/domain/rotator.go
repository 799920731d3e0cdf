package domain

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/rotator/pkg/appcontext"
)

// Rotator is the core of the rotator. It drives a single rotation pass over
// every configured rule, delegating per-path evaluation to the engine and
// per-entry removal to the executor, and aggregates the outcomes.
type Rotator struct {
	logger logrus.FieldLogger

	rules        []Rule
	globalDryRun bool

	engine   engine
	executor executor
	outcomes OutcomeRepository
}

type engine interface {
	Evaluate(path string, rule Rule) ([]Decision, error)
}

type executor interface {
	Apply(ctx context.Context, decision Decision, effectiveDryRun bool) Outcome
}

// OutcomeRepository journals the outcomes of a finished pass. The rotator
// only ever writes to it.
type OutcomeRepository interface {
	RecordPass(ctx context.Context, startedAt time.Time, outcomes []Outcome) error
}

func NewRotator(
	logger logrus.FieldLogger,
	rules []Rule,
	globalDryRun bool,
	engine engine,
	executor executor,
	outcomes OutcomeRepository,
) *Rotator {
	return &Rotator{
		logger: logger,

		rules:        rules,
		globalDryRun: globalDryRun,

		engine:   engine,
		executor: executor,
		outcomes: outcomes,
	}
}

// Run evaluates every rule against every one of its paths. No failure of a
// single entry, path or rule prevents evaluation of the others; only the
// aggregate outcome list reflects what went wrong.
func (r *Rotator) Run(ctx context.Context) []Outcome {
	startedAt := time.Now()

	var outcomes []Outcome

	for i, rule := range r.rules {
		ctx := appcontext.WithRuleSource(ctx, rule.Source)
		logger := appcontext.LoggerFromContext(r.logger, ctx)

		logger.WithFields(logrus.Fields{
			"index": i + 1,
			"total": len(r.rules),
			"paths": len(rule.Paths),
		}).Info("Rotating rule")

		outcomes = append(outcomes, r.rotateRule(ctx, rule)...)
	}

	if err := r.outcomes.RecordPass(ctx, startedAt, outcomes); err != nil {
		r.logger.WithError(err).Error("Unable to journal rotation outcomes")
	}

	return outcomes
}

func (r *Rotator) rotateRule(ctx context.Context, rule Rule) []Outcome {
	var outcomes []Outcome

	for _, path := range rule.Paths {
		ctx := appcontext.WithPath(ctx, path)
		logger := appcontext.LoggerFromContext(r.logger, ctx)

		decisions, err := r.engine.Evaluate(path, rule)

		if IsPathUnavailable(err) {
			logger.WithError(err).Warn("Skipping unavailable path")

			outcomes = append(outcomes, Outcome{
				RuleSource: rule.Source,
				Path:       path,
				Kind:       rule.TargetType,
				Status:     OutcomeSkipped,
				Reason:     err.Error(),
			})

			continue
		}

		if err != nil {
			// A rule-level failure such as an unsupported date-detection
			// method would poison every remaining path the same way.
			logger.WithError(err).Error("Aborting rule")

			outcomes = append(outcomes, Outcome{
				RuleSource: rule.Source,
				Path:       path,
				Kind:       rule.TargetType,
				Status:     OutcomeFailed,
				Reason:     err.Error(),
			})

			break
		}

		if len(decisions) == 0 {
			logger.Debug("Nothing to rotate")
			continue
		}

		effectiveDryRun := r.globalDryRun || rule.DryRun

		logger.WithFields(logrus.Fields{
			"excess":  len(decisions),
			"dry_run": effectiveDryRun,
		}).Info("Purging excess entries")

		for _, decision := range decisions {
			ctx := appcontext.WithEntry(ctx, decision.Entry.Path)

			outcome := r.executor.Apply(ctx, decision, effectiveDryRun)
			outcome.RuleSource = rule.Source

			outcomes = append(outcomes, outcome)
		}
	}

	return outcomes
}
