package domain

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yurykabanov/rotator/pkg/appcontext"
)

// Executor performs or simulates the removal of a single excess entry.
type Executor struct {
	logger logrus.FieldLogger
}

func NewExecutor(logger logrus.FieldLogger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Apply acts on one decision. Failures are reported as outcomes, never
// returned: an entry that vanished or cannot be removed must not abort the
// rest of the pass.
func (x *Executor) Apply(ctx context.Context, decision Decision, effectiveDryRun bool) Outcome {
	logger := appcontext.LoggerFromContext(x.logger, ctx)

	outcome := Outcome{
		Path:   decision.Entry.Path,
		Kind:   decision.Entry.Kind,
		Reason: decision.Reason,
		Age:    decision.Age,
	}

	if effectiveDryRun {
		logger.WithField("reason", decision.Reason).Info("Would purge entry (dry run)")

		outcome.Status = OutcomeSimulated

		return outcome
	}

	if err := x.remove(decision.Entry); err != nil {
		logger.WithError(err).Error("Unable to purge entry")

		outcome.Status = OutcomeFailed
		outcome.Reason = err.Error()

		return outcome
	}

	logger.WithField("reason", decision.Reason).Info("Purged entry")

	outcome.Status = OutcomeDeleted

	return outcome
}

func (x *Executor) remove(entry Entry) error {
	// Re-stat right before removal: the directory is owned by a third-party
	// backup process and the entry may be gone or replaced by now.
	info, err := os.Stat(entry.Path)
	if err != nil {
		return errors.Wrap(err, "entry is gone or unreadable")
	}

	switch entry.Kind {
	case TargetDirectory:
		if !info.IsDir() {
			return errors.Errorf("expected a directory: %s", entry.Path)
		}

		return os.RemoveAll(entry.Path)

	default:
		if info.IsDir() {
			return errors.Errorf("expected a file: %s", entry.Path)
		}

		return os.Remove(entry.Path)
	}
}
