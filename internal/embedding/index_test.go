package embedding

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dwood/corpus-search/internal/errs"
)

const testModel = `4 3
sea 1.0 0.0 0.0
ocean 0.9 0.1 0.0
water 0.7 0.3 0.0
boat 0.0 1.0 0.0
`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectors.vec")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing model fixture: %v", err)
	}
	return path
}

func loadedIndex(t *testing.T, content string, filter CandidateFilter) *Index {
	t.Helper()
	ix := NewIndex(filter)
	if err := ix.Load(writeModel(t, content)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ix
}

func TestSimilarWords_OrderedByCosine(t *testing.T) {
	ix := loadedIndex(t, testModel, nil)

	got, err := ix.SimilarWords("sea", 3)
	if err != nil {
		t.Fatalf("SimilarWords: %v", err)
	}
	want := []string{"ocean", "water", "boat"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSimilarWords_CapsAtK(t *testing.T) {
	ix := loadedIndex(t, testModel, nil)

	got, err := ix.SimilarWords("sea", 2)
	if err != nil {
		t.Fatalf("SimilarWords: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d neighbors, want 2", len(got))
	}
}

func TestSimilarWords_UnknownWord(t *testing.T) {
	ix := loadedIndex(t, testModel, nil)

	_, err := ix.SimilarWords("fish", 3)
	if !errors.Is(err, errs.ErrUnknownWord) {
		t.Fatalf("want ErrUnknownWord, got %v", err)
	}
}

func TestSimilarWords_CaseInsensitiveLookup(t *testing.T) {
	ix := loadedIndex(t, testModel, nil)

	got, err := ix.SimilarWords("SEA", 1)
	if err != nil {
		t.Fatalf("SimilarWords: %v", err)
	}
	if len(got) != 1 || got[0] != "ocean" {
		t.Fatalf("got %v, want [ocean]", got)
	}
}

func TestSimilarWords_CandidateFilter(t *testing.T) {
	// Simulates the corpus-presence restriction: "ocean" never occurs in the
	// corpus, so it must not be offered even though it is the nearest vector.
	filter := func(w string) bool { return w != "ocean" }
	ix := loadedIndex(t, testModel, filter)

	got, err := ix.SimilarWords("sea", 2)
	if err != nil {
		t.Fatalf("SimilarWords: %v", err)
	}
	want := []string{"water", "boat"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSimilarWords_NotReadyBeforeLoad(t *testing.T) {
	ix := NewIndex(nil)
	if _, err := ix.SimilarWords("sea", 3); !errors.Is(err, errs.ErrNotReady) {
		t.Fatalf("want ErrNotReady, got %v", err)
	}
}

func TestLoad_HeaderlessModel(t *testing.T) {
	ix := loadedIndex(t, "sea 1.0 0.0\nboat 0.0 1.0\n", nil)
	if ix.VocabularySize() != 2 {
		t.Fatalf("vocabulary size = %d, want 2", ix.VocabularySize())
	}
}

func TestLoad_MalformedModel(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non-numeric component", "sea 1.0 zero\n"},
		{"dimension mismatch", "sea 1.0 0.0\nboat 1.0 0.0 0.0\n"},
		{"word without vector", "3 2\nsea\n"},
		{"empty model", "\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex(nil)
			if err := ix.Load(writeModel(t, tt.content)); err == nil {
				t.Fatal("Load accepted a malformed model")
			}
			if ix.Ready() {
				t.Error("index reports ready after failed load")
			}
		})
	}
}
