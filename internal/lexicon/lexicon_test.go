package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStopWords(t *testing.T) {
	s, err := LoadStopWords()
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() == 0 {
		t.Fatal("embedded stop words empty")
	}
	if !s.Contains("the") || !s.Contains("THE") {
		t.Fatal("expected case-insensitive hit for 'the'")
	}
	if s.Contains("kubernetes") {
		t.Fatal("unexpected stop word")
	}
}

func TestLoadStopWordsMergesFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("Alpha\n\nbeta\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("gamma\nbeta\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadStopWords(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 merged words, got %d", s.Len())
	}
	for _, w := range []string{"alpha", "beta", "gamma"} {
		if !s.Contains(w) {
			t.Fatalf("missing %q", w)
		}
	}
}

func TestDefaultValences(t *testing.T) {
	v, err := LoadValences("")
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() == 0 {
		t.Fatal("embedded lexicon empty")
	}
	if v.Score("awesome") <= 0 {
		t.Fatal("expected positive valence for 'awesome'")
	}
	if v.Score("awful") >= 0 {
		t.Fatal("expected negative valence for 'awful'")
	}
	if v.Score("chair") != 0 {
		t.Fatal("expected zero valence for unknown word")
	}
}

func TestLoadValencesRejectsMalformedLine(t *testing.T) {
	p := filepath.Join(t.TempDir(), "lex.txt")
	if err := os.WriteFile(p, []byte("good 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadValences(p); err == nil {
		t.Fatal("expected error for space-separated line")
	}
}
