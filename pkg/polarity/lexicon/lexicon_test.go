package lexicon

import (
	"testing"

	"github.com/cognicore/polarity/pkg/polarity/text"
)

func toks(words ...string) []text.Text {
	out := make([]text.Text, len(words))
	for i, w := range words {
		out[i] = text.FromString(w)
	}
	return out
}

func TestUpdateAndScore(t *testing.T) {
	lex := New()
	lex.Update(text.FromString("good"), true)
	lex.Update(text.FromString("bad"), false)

	if got := lex.Score(toks("good")); got != 1 {
		t.Errorf("Score(good) = %d, want 1", got)
	}
	if got := lex.Score(toks("bad")); got != -1 {
		t.Errorf("Score(bad) = %d, want -1", got)
	}
	if got := lex.Score(toks("unseen")); got != 0 {
		t.Errorf("Score(unseen) = %d, want 0", got)
	}
	if got := lex.Score(toks("good", "bad")); got != 0 {
		t.Errorf("Score(good,bad) = %d, want 0", got)
	}
}

func TestShortTokensIgnored(t *testing.T) {
	lex := New()
	lex.Update(text.FromString("a"), true)
	lex.Update(text.FromString(""), true)

	if lex.Size() != 0 {
		t.Errorf("short tokens should be ignored, Size = %d", lex.Size())
	}
}

func TestCountsAccumulate(t *testing.T) {
	lex := New()
	lex.Update(text.FromString("word"), true)
	lex.Update(text.FromString("word"), true)
	lex.Update(text.FromString("word"), false)

	stat, ok := lex.Lookup(text.FromString("word"))
	if !ok {
		t.Fatal("word should be present")
	}
	if stat.Positive != 2 || stat.Negative != 1 {
		t.Errorf("stat = %+v, want {2 1}", stat)
	}
	if got := lex.Score(toks("word")); got != 1 {
		t.Errorf("Score(word) = %d, want 1", got)
	}
}

func TestClassifyScore(t *testing.T) {
	if ClassifyScore(1) != Positive {
		t.Error("positive score should classify positive")
	}
	if ClassifyScore(0) != Negative {
		t.Error("zero score should resolve negative")
	}
	if ClassifyScore(-3) != Negative {
		t.Error("negative score should classify negative")
	}
}

func TestPolarityOfLabel(t *testing.T) {
	if PolarityOfLabel(text.FromString("4")) != Positive {
		t.Error("label 4 should be positive")
	}
	if PolarityOfLabel(text.FromString("0")) != Negative {
		t.Error("label 0 should be negative")
	}
	if PolarityOfLabel(text.FromString("42")) != Positive {
		t.Error("only the first byte is inspected")
	}
	if PolarityOfLabel(text.New()) != Negative {
		t.Error("empty label should be negative")
	}
}

func TestSummarize(t *testing.T) {
	lex := New()
	lex.Update(text.FromString("good"), true)
	lex.Update(text.FromString("good"), true)
	lex.Update(text.FromString("bad"), false)

	s := lex.Summarize()
	if s.Tokens != 2 || s.PositiveTotal != 2 || s.NegativeTotal != 1 {
		t.Errorf("Summarize = %+v", s)
	}
}

func TestTop(t *testing.T) {
	lex := New()
	for i := 0; i < 5; i++ {
		lex.Update(text.FromString("great"), true)
	}
	for i := 0; i < 3; i++ {
		lex.Update(text.FromString("awful"), false)
	}
	lex.Update(text.FromString("meh"), true)
	lex.Update(text.FromString("meh"), false)

	top := lex.Top(2)
	if len(top) != 2 {
		t.Fatalf("Top(2) returned %d entries", len(top))
	}
	if top[0].Token != "great" || top[1].Token != "awful" {
		t.Errorf("Top order = [%s %s], want [great awful]", top[0].Token, top[1].Token)
	}

	if got := lex.Top(0); got != nil {
		t.Errorf("Top(0) = %v, want nil", got)
	}
	if got := lex.Top(100); len(got) != 3 {
		t.Errorf("Top(100) returned %d entries, want 3", len(got))
	}
}
