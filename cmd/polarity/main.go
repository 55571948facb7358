package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/polarity/pkg/polarity"
	"github.com/cognicore/polarity/pkg/polarity/config"
	"github.com/cognicore/polarity/pkg/polarity/store"
	"github.com/cognicore/polarity/pkg/polarity/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML run configuration (overrides the path flags)")
		trainPath  = flag.String("train", "", "Labeled training CSV")
		testPath   = flag.String("test", "", "Unlabeled test CSV")
		truthPath  = flag.String("truth", "", "Ground-truth sentiment CSV")
		results    = flag.String("results", "", "Prediction output file")
		accuracy   = flag.String("accuracy", "", "Accuracy output file")
		dbPath     = flag.String("db", "", "SQLite run archive (optional)")
		topTokens  = flag.Int("top", 0, "Print the N most polar tokens after training")
	)
	flag.Parse()

	cfg := &config.Config{
		Train:    *trainPath,
		Test:     *testPath,
		Truth:    *truthPath,
		Results:  *results,
		Accuracy: *accuracy,
		DB:       *dbPath,
	}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var archive store.Store
	if cfg.DB != "" {
		var err error
		archive, err = sqlite.Open(ctx, cfg.DB)
		if err != nil {
			log.Fatalf("open run archive: %v", err)
		}
	}

	engine := polarity.New(polarity.Options{Store: archive})
	defer engine.Close()

	if err := run(ctx, engine, cfg, *topTokens); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, engine *polarity.Engine, cfg *config.Config, topTokens int) error {
	clf := engine.Classifier()

	// Train
	fmt.Println("Training classifier...")
	trainFile, err := os.Open(cfg.Train)
	if err != nil {
		return fmt.Errorf("open training file: %w", err)
	}
	err = engine.Train(trainFile)
	trainFile.Close()
	if err != nil {
		return err
	}

	pos, neg := clf.TrainingCounts()
	fmt.Printf("Training complete. Processed %d tweets (%d positive, %d negative).\n", pos+neg, pos, neg)
	fmt.Printf("Vocabulary size: %d words.\n", clf.VocabularySize())

	if topTokens > 0 {
		fmt.Printf("Top %d polar tokens:\n", topTokens)
		for _, e := range clf.Lexicon().Top(topTokens) {
			fmt.Printf("  %-20s +%d / -%d\n", e.Token, e.Stat.Positive, e.Stat.Negative)
		}
	}

	// Predict
	fmt.Println("Making predictions...")
	testFile, err := os.Open(cfg.Test)
	if err != nil {
		return fmt.Errorf("open test file: %w", err)
	}
	defer testFile.Close()

	resultsFile, err := os.Create(cfg.Results)
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}
	defer resultsFile.Close()

	if err := engine.Predict(testFile, resultsFile); err != nil {
		return err
	}
	fmt.Printf("Prediction complete. Made predictions for %d tweets.\n", clf.PredictionCount())

	// Evaluate
	fmt.Println("Evaluating predictions...")
	truthFile, err := os.Open(cfg.Truth)
	if err != nil {
		return fmt.Errorf("open ground truth file: %w", err)
	}
	defer truthFile.Close()

	accuracyFile, err := os.Create(cfg.Accuracy)
	if err != nil {
		return fmt.Errorf("open accuracy file: %w", err)
	}
	defer accuracyFile.Close()

	report, err := engine.Evaluate(ctx, truthFile, accuracyFile)
	if err != nil {
		return err
	}

	if report.Matched == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no predictions matched the ground truth; check that the files share tweet IDs.")
	}
	fmt.Printf("Evaluation complete. Accuracy: %.1f%%\n", report.Accuracy*100)
	fmt.Printf("%d correct predictions out of %d.\n", report.Correct, report.Matched)
	fmt.Printf("%d misclassifications.\n", len(report.Misses))

	fmt.Println("Sentiment analysis complete.")
	fmt.Printf("Results written to: %s\n", cfg.Results)
	fmt.Printf("Accuracy metrics written to: %s\n", cfg.Accuracy)
	return nil
}
