package lexicon

import (
	"sort"

	"github.com/cognicore/polarity/pkg/polarity/text"
)

// Polarity is one of the two sentiment labels, encoded as the corpus does:
// 0 for negative, 4 for positive.
type Polarity int

const (
	Negative Polarity = 0
	Positive Polarity = 4
)

// ClassifyScore maps a signed token score to a label. The threshold is
// asymmetric: only a strictly positive score is positive, so ties resolve
// negative.
func ClassifyScore(score int) Polarity {
	if score > 0 {
		return Positive
	}
	return Negative
}

// PolarityOfLabel reads a label field as written in the corpus: positive
// when the first byte is '4', negative otherwise (including empty).
func PolarityOfLabel(label text.Text) Polarity {
	if label.Len() > 0 && label.At(0) == '4' {
		return Positive
	}
	return Negative
}

// WordStat holds how often a token occurred in positive and in negative
// training examples. Counts only ever grow.
type WordStat struct {
	Positive int
	Negative int
}

// Lexicon is the trained model: a mapping from token to its occurrence
// counts per label. Entries are created on first sight and never deleted.
type Lexicon struct {
	counts map[string]WordStat
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{counts: make(map[string]WordStat)}
}

// Update records one occurrence of token in a training example of the
// given polarity. Tokens of length one or less carry no signal and are
// ignored.
func (l *Lexicon) Update(token text.Text, positive bool) {
	if token.Len() <= 1 {
		return
	}

	stat := l.counts[token.String()]
	if positive {
		stat.Positive++
	} else {
		stat.Negative++
	}
	l.counts[token.String()] = stat
}

// Score sums (positive count - negative count) over every token the model
// knows; unseen tokens contribute nothing. There is no normalization or
// smoothing.
func (l *Lexicon) Score(tokens []text.Text) int {
	score := 0
	for _, tok := range tokens {
		if stat, ok := l.counts[tok.String()]; ok {
			score += stat.Positive - stat.Negative
		}
	}
	return score
}

// Lookup returns the counts recorded for a token.
func (l *Lexicon) Lookup(token text.Text) (WordStat, bool) {
	stat, ok := l.counts[token.String()]
	return stat, ok
}

// Size returns the number of distinct tokens in the model.
func (l *Lexicon) Size() int {
	return len(l.counts)
}

// Stats summarizes the model contents.
type Stats struct {
	Tokens        int // distinct tokens
	PositiveTotal int // sum of positive counts
	NegativeTotal int // sum of negative counts
}

// Summarize walks the model once and returns aggregate counts.
func (l *Lexicon) Summarize() Stats {
	s := Stats{Tokens: len(l.counts)}
	for _, stat := range l.counts {
		s.PositiveTotal += stat.Positive
		s.NegativeTotal += stat.Negative
	}
	return s
}

// Entry pairs a token with its counts, for reporting.
type Entry struct {
	Token string
	Stat  WordStat
}

// Top returns the n most polar tokens, ordered by the absolute difference
// between their positive and negative counts (ties broken by token, so the
// order is deterministic). Read-side diagnostics only; scoring never
// consults it.
func (l *Lexicon) Top(n int) []Entry {
	if n <= 0 {
		return nil
	}

	entries := make([]Entry, 0, len(l.counts))
	for tok, stat := range l.counts {
		entries = append(entries, Entry{Token: tok, Stat: stat})
	}

	sort.Slice(entries, func(i, j int) bool {
		di := abs(entries[i].Stat.Positive - entries[i].Stat.Negative)
		dj := abs(entries[j].Stat.Positive - entries[j].Stat.Negative)
		if di != dj {
			return di > dj
		}
		return entries[i].Token < entries[j].Token
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
