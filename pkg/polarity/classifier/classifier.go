package classifier

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cognicore/polarity/pkg/polarity/ingest"
	"github.com/cognicore/polarity/pkg/polarity/internalerr"
	"github.com/cognicore/polarity/pkg/polarity/lexicon"
	"github.com/cognicore/polarity/pkg/polarity/text"
)

// Column layouts of the corpus files. Training rows carry a leading label;
// test rows do not. Ground-truth rows are (label, id) — the inverse of the
// prediction output order, which is preserved deliberately.
const (
	trainColumns   = 6 // label, id, date, query, user, text
	predictColumns = 5 // id, date, query, user, text
	truthColumns   = 2 // label, id
)

// Phase tracks how far a classifier has progressed. It is diagnostic:
// re-training accumulates into the same model, and predicting with an
// untrained model succeeds (producing all-negative output).
type Phase int

const (
	Untrained Phase = iota
	Trained
	Predicted
	Evaluated
)

// Misclassification records one test record whose predicted polarity
// differed from the ground truth.
type Misclassification struct {
	Predicted lexicon.Polarity
	Actual    lexicon.Polarity
	ID        string
}

// Report summarizes one evaluation pass.
type Report struct {
	Correct  int
	Matched  int // truth ids that had a recorded prediction
	Accuracy float64
	Misses   []Misclassification
}

// Classifier runs the train/predict/evaluate pipeline over decoded line
// streams. All state lives on the instance; nothing is shared or persisted
// across instances.
type Classifier struct {
	lex         *lexicon.Lexicon
	tok         *ingest.Tokenizer
	predictions map[string]lexicon.Polarity

	trainPositive int
	trainNegative int
	phase         Phase
}

// New creates a classifier with an empty model.
func New() *Classifier {
	return &Classifier{
		lex:         lexicon.New(),
		tok:         ingest.NewTokenizer(),
		predictions: make(map[string]lexicon.Polarity),
	}
}

// Phase returns the pipeline phase reached so far.
func (c *Classifier) Phase() Phase {
	return c.phase
}

// TrainingCounts returns how many positive and negative training rows have
// been consumed.
func (c *Classifier) TrainingCounts() (positive, negative int) {
	return c.trainPositive, c.trainNegative
}

// VocabularySize returns the number of distinct tokens in the model.
func (c *Classifier) VocabularySize() int {
	return c.lex.Size()
}

// PredictionCount returns the number of ids with a recorded prediction.
func (c *Classifier) PredictionCount() int {
	return len(c.predictions)
}

// Lexicon exposes the trained model for read-side diagnostics.
func (c *Classifier) Lexicon() *lexicon.Lexicon {
	return c.lex
}

// Train consumes labeled rows and folds their tokens into the model.
// The first line is a header and is skipped unconditionally; rows with
// fewer than six fields are skipped silently. Calling Train again
// accumulates more data into the same model. The only failure mode is an
// unreadable input stream.
func (c *Classifier) Train(r io.Reader) error {
	if r == nil {
		return fmt.Errorf("train: %w", internalerr.ErrNoInput)
	}

	scanner := newLineScanner(r)
	for scanner.Scan() {
		fields := ingest.ParseLine(text.FromString(scanner.Text()), true)
		if len(fields) < trainColumns {
			continue
		}

		positive := lexicon.PolarityOfLabel(fields[0]) == lexicon.Positive
		if positive {
			c.trainPositive++
		} else {
			c.trainNegative++
		}

		for _, tok := range c.tok.Tokenize(fields[5]) {
			c.lex.Update(tok, positive)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("train: read input: %w", err)
	}

	c.phase = Trained
	return nil
}

// Predict consumes unlabeled rows, scores each against the model, records
// the predicted polarity keyed by id (later rows overwrite earlier ones for
// the same id), and emits one "<label>,<id>" line per row in input order.
// Rows with fewer than five fields are skipped silently.
func (c *Classifier) Predict(r io.Reader, w io.Writer) error {
	if r == nil {
		return fmt.Errorf("predict: %w", internalerr.ErrNoInput)
	}
	if w == nil {
		return fmt.Errorf("predict: %w", internalerr.ErrNoOutput)
	}

	scanner := newLineScanner(r)
	for scanner.Scan() {
		fields := ingest.ParseLine(text.FromString(scanner.Text()), false)
		if len(fields) < predictColumns {
			continue
		}

		id := fields[0].String()
		score := c.lex.Score(c.tok.Tokenize(fields[4]))
		label := lexicon.ClassifyScore(score)

		c.predictions[id] = label
		if _, err := fmt.Fprintf(w, "%d,%s\n", label, id); err != nil {
			return fmt.Errorf("predict: write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("predict: read input: %w", err)
	}

	c.phase = Predicted
	return nil
}

// Evaluate compares recorded predictions against ground-truth rows and
// writes the accuracy (exactly three decimals) followed by one
// "<predicted>,<actual>,<id>" line per misclassification in encounter
// order. Truth ids with no recorded prediction are skipped and counted on
// neither side. With zero matched ids the accuracy degrades to 0.000; the
// caller sees that through Report.Matched and owns any warning.
func (c *Classifier) Evaluate(r io.Reader, w io.Writer) (Report, error) {
	if r == nil {
		return Report{}, fmt.Errorf("evaluate: %w", internalerr.ErrNoInput)
	}
	if w == nil {
		return Report{}, fmt.Errorf("evaluate: %w", internalerr.ErrNoOutput)
	}

	var report Report

	scanner := newLineScanner(r)
	for scanner.Scan() {
		fields := ingest.ParseLine(text.FromString(scanner.Text()), true)
		if len(fields) < truthColumns {
			continue
		}

		id := fields[1].String()
		predicted, ok := c.predictions[id]
		if !ok {
			continue
		}

		actual := lexicon.PolarityOfLabel(fields[0])
		report.Matched++
		if predicted == actual {
			report.Correct++
		} else {
			report.Misses = append(report.Misses, Misclassification{
				Predicted: predicted,
				Actual:    actual,
				ID:        id,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return Report{}, fmt.Errorf("evaluate: read input: %w", err)
	}

	if report.Matched > 0 {
		report.Accuracy = float64(report.Correct) / float64(report.Matched)
	}

	if _, err := fmt.Fprintf(w, "%.3f\n", report.Accuracy); err != nil {
		return Report{}, fmt.Errorf("evaluate: write output: %w", err)
	}
	for _, m := range report.Misses {
		if _, err := fmt.Fprintf(w, "%d,%d,%s\n", m.Predicted, m.Actual, m.ID); err != nil {
			return Report{}, fmt.Errorf("evaluate: write output: %w", err)
		}
	}

	c.phase = Evaluated
	return report, nil
}

// newLineScanner wraps r in a scanner that has already consumed the header
// line. Every corpus file starts with a header, so it is dropped regardless
// of content. Tweet rows can run long; the buffer allows for it.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Scan()
	return scanner
}
