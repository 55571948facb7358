package ingest

import (
	"testing"

	"github.com/cognicore/polarity/pkg/polarity/text"
)

func fieldsOf(line string, hasLabel bool) []string {
	parsed := ParseLine(text.FromString(line), hasLabel)
	out := make([]string, len(parsed))
	for i, f := range parsed {
		out[i] = f.String()
	}
	return out
}

func TestParseLinePlain(t *testing.T) {
	got := fieldsOf("4,123,date,q,user,hello world", true)
	want := []string{"4", "123", "date", "q", "user", "hello world"}

	if len(got) != len(want) {
		t.Fatalf("got %d fields, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseLineQuotedComma(t *testing.T) {
	got := fieldsOf(`4,123,date,q,user,"a, b" text`, true)

	if len(got) != 6 {
		t.Fatalf("got %d fields, want 6: %v", len(got), got)
	}
	// Quotes are dropped, the embedded comma survives.
	if got[5] != "a, b text" {
		t.Errorf("text field = %q, want %q", got[5], "a, b text")
	}
}

func TestParseLineTrailingField(t *testing.T) {
	got := fieldsOf("a,b,", false)
	if len(got) != 3 {
		t.Fatalf("got %d fields, want 3: %v", len(got), got)
	}
	if got[2] != "" {
		t.Errorf("trailing field = %q, want empty", got[2])
	}
}

func TestParseLineEmpty(t *testing.T) {
	got := fieldsOf("", false)
	if len(got) != 1 || got[0] != "" {
		t.Errorf("empty line should yield one empty field, got %v", got)
	}
}

func TestParseLineUnterminatedQuote(t *testing.T) {
	// An unclosed quote swallows the rest of the line into one field.
	got := fieldsOf(`a,"b,c`, false)
	if len(got) != 2 {
		t.Fatalf("got %d fields, want 2: %v", len(got), got)
	}
	if got[1] != "b,c" {
		t.Errorf("field = %q, want %q", got[1], "b,c")
	}
}

func TestParseLineQuotesNeverReproduced(t *testing.T) {
	for _, f := range fieldsOf(`"a","b","c"`, false) {
		for i := 0; i < len(f); i++ {
			if f[i] == '"' {
				t.Errorf("quote byte leaked into field %q", f)
			}
		}
	}
}
