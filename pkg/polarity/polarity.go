// Package polarity classifies short texts as positive or negative using a
// frequency-based lexicon trained from labeled examples.
package polarity

import (
	"context"
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/polarity/pkg/polarity/classifier"
	"github.com/cognicore/polarity/pkg/polarity/store"
)

// Engine is the main classifier facade. It owns one pipeline instance and,
// when configured with a store, archives a report after each evaluation.
type Engine struct {
	clf     *classifier.Classifier
	store   store.Store
	entropy *ulid.MonotonicEntropy

	runID     string
	startedAt time.Time
}

// Options configures an Engine instance
type Options struct {
	// Store is the optional run archive. When nil, reports are not saved.
	Store store.Store
}

// New creates an Engine with a fresh, untrained model.
func New(opts Options) *Engine {
	e := &Engine{
		clf:     classifier.New(),
		store:   opts.Store,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	e.stampRun()
	return e
}

func (e *Engine) stampRun() {
	e.startedAt = time.Now()
	e.runID = ulid.MustNew(ulid.Timestamp(e.startedAt), e.entropy).String()
}

// RunID returns the ULID identifying this engine's current run.
func (e *Engine) RunID() string {
	return e.runID
}

// Classifier exposes the underlying pipeline for diagnostics.
func (e *Engine) Classifier() *classifier.Classifier {
	return e.clf
}

// Close releases the run archive, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Train folds labeled rows into the model. See classifier.Train.
func (e *Engine) Train(r io.Reader) error {
	return e.clf.Train(r)
}

// Predict scores unlabeled rows and emits predictions. See
// classifier.Predict.
func (e *Engine) Predict(r io.Reader, w io.Writer) error {
	return e.clf.Predict(r, w)
}

// Evaluate compares predictions against ground truth, emits the accuracy
// report, and archives the run when a store is configured.
func (e *Engine) Evaluate(ctx context.Context, r io.Reader, w io.Writer) (classifier.Report, error) {
	report, err := e.clf.Evaluate(r, w)
	if err != nil {
		return report, err
	}

	if e.store != nil {
		if err := e.store.SaveRun(ctx, e.runReport(report)); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (e *Engine) runReport(report classifier.Report) store.Run {
	pos, neg := e.clf.TrainingCounts()
	return store.Run{
		ID:              e.runID,
		StartedAt:       e.startedAt,
		TrainedPositive: pos,
		TrainedNegative: neg,
		VocabularySize:  e.clf.VocabularySize(),
		Predictions:     e.clf.PredictionCount(),
		Matched:         report.Matched,
		Correct:         report.Correct,
		Accuracy:        report.Accuracy,
		Misclassified:   len(report.Misses),
	}
}
