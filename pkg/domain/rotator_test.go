package domain

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// region engineMock
type engineMock struct {
	mock.Mock
}

func (m *engineMock) Evaluate(path string, rule Rule) ([]Decision, error) {
	args := m.Called(path, rule)

	if d := args.Get(0); d != nil {
		return d.([]Decision), args.Error(1)
	}

	return nil, args.Error(1)
}

// endregion

// region executorMock
type executorMock struct {
	mock.Mock
}

func (m *executorMock) Apply(ctx context.Context, decision Decision, effectiveDryRun bool) Outcome {
	args := m.Called(ctx, decision, effectiveDryRun)
	return args.Get(0).(Outcome)
}

// endregion

// region outcomeRepositoryMock
type outcomeRepositoryMock struct {
	mock.Mock
}

func (m *outcomeRepositoryMock) RecordPass(ctx context.Context, startedAt time.Time, outcomes []Outcome) error {
	args := m.Called(ctx, startedAt, outcomes)
	return args.Error(0)
}

// endregion

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func recordingRepo() *outcomeRepositoryMock {
	repo := &outcomeRepositoryMock{}
	repo.On("RecordPass", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return repo
}

func TestRotator_Run_PathUnavailableDoesNotBlockSiblings(t *testing.T) {
	rule := fileRule(2)
	rule.Paths = []string{"/missing", "/backups"}

	decision := Decision{Entry: fileEntry("/backups/2019-07-01"), Reason: ReasonMaximumItems}

	engine := &engineMock{}
	engine.On("Evaluate", "/missing", rule).
		Return(nil, &PathUnavailableError{Path: "/missing", Err: assert.AnError})
	engine.On("Evaluate", "/backups", rule).Return([]Decision{decision}, nil)

	executor := &executorMock{}
	executor.On("Apply", mock.Anything, decision, false).
		Return(Outcome{Path: decision.Entry.Path, Kind: TargetFile, Status: OutcomeDeleted})

	outcomes := NewRotator(testLogger(), []Rule{rule}, false, engine, executor, recordingRepo()).
		Run(context.Background())

	assert.Len(t, outcomes, 2)

	assert.Equal(t, OutcomeSkipped, outcomes[0].Status)
	assert.Equal(t, "/missing", outcomes[0].Path)
	assert.Equal(t, rule.Source, outcomes[0].RuleSource)

	assert.Equal(t, OutcomeDeleted, outcomes[1].Status)
	assert.Equal(t, "/backups/2019-07-01", outcomes[1].Path)
	assert.Equal(t, rule.Source, outcomes[1].RuleSource)

	engine.AssertExpectations(t)
	executor.AssertExpectations(t)
}

func TestRotator_Run_UnsupportedDetectionAbortsRuleOnly(t *testing.T) {
	broken := fileRule(2)
	broken.Source = "/etc/rotator/broken.yaml"
	broken.Paths = []string{"/backups/a", "/backups/b"}

	healthy := fileRule(2)
	healthy.Source = "/etc/rotator/healthy.yaml"
	healthy.Paths = []string{"/backups/c"}

	engine := &engineMock{}
	engine.On("Evaluate", "/backups/a", broken).Return(nil, ErrUnsupportedDetection)
	engine.On("Evaluate", "/backups/c", healthy).Return([]Decision{}, nil)

	outcomes := NewRotator(testLogger(), []Rule{broken, healthy}, false, engine, &executorMock{}, recordingRepo()).
		Run(context.Background())

	assert.Len(t, outcomes, 1)
	assert.Equal(t, OutcomeFailed, outcomes[0].Status)
	assert.Equal(t, "/backups/a", outcomes[0].Path)

	// The broken rule's second path must never be evaluated.
	engine.AssertNotCalled(t, "Evaluate", "/backups/b", broken)
	engine.AssertExpectations(t)
}

func TestRotator_Run_EffectiveDryRunIsOrOfFlags(t *testing.T) {
	tests := []struct {
		name     string
		global   bool
		rule     bool
		expected bool
	}{
		{"both off means real deletion", false, false, false},
		{"rule flag forces simulation", false, true, true},
		{"global flag forces simulation", true, false, true},
		{"both on stays simulated", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := fileRule(0)
			rule.DryRun = tt.rule

			decision := Decision{Entry: fileEntry("/backups/a"), Reason: ReasonMaximumItems}

			engine := &engineMock{}
			engine.On("Evaluate", "/backups", rule).Return([]Decision{decision}, nil)

			executor := &executorMock{}
			executor.On("Apply", mock.Anything, decision, tt.expected).
				Return(Outcome{Path: decision.Entry.Path, Status: OutcomeSimulated})

			NewRotator(testLogger(), []Rule{rule}, tt.global, engine, executor, recordingRepo()).
				Run(context.Background())

			executor.AssertExpectations(t)
		})
	}
}

func TestRotator_Run_RuleWithoutPathsIsNoop(t *testing.T) {
	rule := fileRule(2)
	rule.Paths = nil

	engine := &engineMock{}

	outcomes := NewRotator(testLogger(), []Rule{rule}, false, engine, &executorMock{}, recordingRepo()).
		Run(context.Background())

	assert.Empty(t, outcomes)
	engine.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything)
}

func TestRotator_Run_JournalFailureDoesNotChangeOutcomes(t *testing.T) {
	rule := fileRule(2)

	engine := &engineMock{}
	engine.On("Evaluate", "/backups", rule).Return([]Decision{}, nil)

	repo := &outcomeRepositoryMock{}
	repo.On("RecordPass", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	outcomes := NewRotator(testLogger(), []Rule{rule}, false, engine, &executorMock{}, repo).
		Run(context.Background())

	assert.Empty(t, outcomes)
	repo.AssertExpectations(t)
}
