package store

import (
	"context"
	"time"
)

// Run is the archived record of one classification run: training volume,
// model size, and evaluation outcome. Only diagnostics are stored — never
// the model itself, which is rebuilt from scratch every run.
type Run struct {
	ID              string
	StartedAt       time.Time
	TrainedPositive int
	TrainedNegative int
	VocabularySize  int
	Predictions     int
	Matched         int
	Correct         int
	Accuracy        float64
	Misclassified   int
}

// Store archives run reports so repeated experiments stay comparable.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}
