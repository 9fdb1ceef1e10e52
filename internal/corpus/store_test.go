package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dwood/corpus-search/internal/errs"
)

const testCorpus = "The old man fished. The sea was calm! A fish swam.\nThe Sea rose at dawn."

func newTestStore(t *testing.T, text string) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("writing corpus fixture: %v", err)
	}
	store, err := New(Config{Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store, path
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "mixed terminators",
			text: "One. Two! Three?",
			want: []string{"One.", "Two!", "Three?"},
		},
		{
			name: "trailing fragment without terminator",
			text: "One. two three",
			want: []string{"One.", "two three"},
		},
		{
			name: "empty input",
			text: "   ",
			want: nil,
		},
		{
			name: "newlines inside a sentence",
			text: "The sea\nwas calm.",
			want: []string{"The sea\nwas calm."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sentences %q, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sentence %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindMatchingSentences(t *testing.T) {
	store, _ := newTestStore(t, testCorpus)

	tests := []struct {
		name      string
		word      string
		wantTexts []string
		wantErr   error
	}{
		{
			name:      "case-insensitive whole word",
			word:      "sea",
			wantTexts: []string{"The sea was calm!", "The Sea rose at dawn."},
		},
		{
			name:      "whole word does not match fished",
			word:      "fish",
			wantTexts: []string{"A fish swam."},
		},
		{
			name:      "absent word is empty not an error",
			word:      "mountain",
			wantTexts: nil,
		},
		{
			name:      "empty word is empty not an error",
			word:      "  ",
			wantTexts: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.FindMatchingSentences(tt.word)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantTexts) {
				t.Fatalf("got %d results %v, want %d", len(got), got, len(tt.wantTexts))
			}
			for i, want := range tt.wantTexts {
				if got[i].Text != want {
					t.Errorf("result %d: got %q, want %q", i, got[i].Text, want)
				}
				if got[i].MatchedTerm != tt.word {
					t.Errorf("result %d: matched term %q, want %q", i, got[i].MatchedTerm, tt.word)
				}
			}
		})
	}
}

func TestFindSentencesForWords_Dedupes(t *testing.T) {
	store, _ := newTestStore(t, "The fish and the trout swam. The trout leapt.")

	got, err := store.FindSentencesForWords([]string{"fish", "trout"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The first sentence matches both words but must appear once, attributed
	// to the first trigger.
	if len(got) != 2 {
		t.Fatalf("got %d results %v, want 2", len(got), got)
	}
	if got[0].MatchedTerm != "fish" {
		t.Errorf("first result attributed to %q, want fish", got[0].MatchedTerm)
	}
	seen := map[string]int{}
	for _, r := range got {
		seen[r.Text]++
	}
	for text, n := range seen {
		if n > 1 {
			t.Errorf("sentence %q appears %d times", text, n)
		}
	}
}

func TestReplaceWord(t *testing.T) {
	store, path := newTestStore(t, testCorpus)

	count, err := store.ReplaceWord("sea", "ocean")
	if err != nil {
		t.Fatalf("ReplaceWord: %v", err)
	}
	if count != 2 {
		t.Errorf("replaced %d occurrences, want 2", count)
	}

	if got, _ := store.FindMatchingSentences("sea"); len(got) != 0 {
		t.Errorf("old word still matches %d sentences after replace", len(got))
	}
	got, _ := store.FindMatchingSentences("ocean")
	if len(got) != 2 {
		t.Errorf("new word matches %d sentences, want 2", len(got))
	}

	// Replacing the same pair again must fail: the old word is gone.
	if _, err := store.ReplaceWord("sea", "ocean"); !errors.Is(err, errs.ErrWordNotFound) {
		t.Errorf("second replace: want ErrWordNotFound, got %v", err)
	}

	// The rewrite is persisted.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading persisted corpus: %v", err)
	}
	if strings.Contains(strings.ToLower(string(data)), " sea ") {
		t.Error("persisted corpus still contains the old word")
	}
	if !strings.Contains(string(data), "ocean") {
		t.Error("persisted corpus lacks the new word")
	}
}

func TestRemoveWord(t *testing.T) {
	store, path := newTestStore(t, "The calm sea was calm. A fish swam.")

	before := store.SentenceCount()
	count, err := store.RemoveWord("calm")
	if err != nil {
		t.Fatalf("RemoveWord: %v", err)
	}
	if count != 2 {
		t.Errorf("removed %d occurrences, want 2", count)
	}

	// Removal deletes the token, not the sentence.
	if after := store.SentenceCount(); after != before {
		t.Errorf("sentence count changed from %d to %d", before, after)
	}
	if got, _ := store.FindMatchingSentences("calm"); len(got) != 0 {
		t.Errorf("removed word still matches %d sentences", len(got))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading persisted corpus: %v", err)
	}
	if got, want := string(data), "The sea was. A fish swam."; got != want {
		t.Errorf("persisted corpus = %q, want %q", got, want)
	}

	if _, err := store.RemoveWord("calm"); !errors.Is(err, errs.ErrWordNotFound) {
		t.Errorf("second remove: want ErrWordNotFound, got %v", err)
	}
}

func TestAddWord(t *testing.T) {
	store, path := newTestStore(t, "The sea was calm.")

	if err := store.AddWord("storm"); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	if !store.Contains("storm") {
		t.Error("added word not found in token set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading persisted corpus: %v", err)
	}
	if !strings.HasSuffix(string(data), "storm") {
		t.Errorf("persisted corpus %q does not end with the added word", string(data))
	}
}

func TestContains(t *testing.T) {
	store, _ := newTestStore(t, testCorpus)

	tests := []struct {
		word string
		want bool
	}{
		{"fish", true},
		{"FISH", true},
		{"fished", true},
		{"trout", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := store.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestSnippetWindow(t *testing.T) {
	text := strings.Repeat("padding ", 10) + "needle" + strings.Repeat(" padding", 10) + "."
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := New(Config{Path: path, ContextSize: 10})
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.FindMatchingSentences("needle")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if !strings.Contains(got[0].Snippet, "needle") {
		t.Errorf("snippet %q does not contain the match", got[0].Snippet)
	}
	if len([]rune(got[0].Snippet)) > len("needle")+2*10 {
		t.Errorf("snippet %q exceeds the context window", got[0].Snippet)
	}
}

func TestReplaceWordPersistFailureLeavesStateUntouched(t *testing.T) {
	store, path := newTestStore(t, testCorpus)

	// Swap the artifact for a directory so the rename step must fail.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := store.ReplaceWord("sea", "ocean"); !errors.Is(err, errs.ErrPersistence) {
		t.Fatalf("want ErrPersistence, got %v", err)
	}

	// The in-memory corpus still serves the pre-edit snapshot.
	if got, _ := store.FindMatchingSentences("sea"); len(got) != 2 {
		t.Errorf("old word matches %d sentences after failed replace, want 2", len(got))
	}
	if got, _ := store.FindMatchingSentences("ocean"); len(got) != 0 {
		t.Errorf("new word matches %d sentences after failed replace, want 0", len(got))
	}

	// The failed write cleans up its temp file.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".corpus-") {
			t.Errorf("stray temp file %s left behind", e.Name())
		}
	}
}

func TestReplaceWordNormalizesQueryForm(t *testing.T) {
	store, _ := newTestStore(t, "The sea was calm.")

	// A fullwidth query form edits its plain equivalent, matching search.
	count, err := store.ReplaceWord("ｓｅａ", "ocean")
	if err != nil {
		t.Fatalf("ReplaceWord: %v", err)
	}
	if count != 1 {
		t.Errorf("replaced %d occurrences, want 1", count)
	}
	if got, _ := store.FindMatchingSentences("ocean"); len(got) != 1 {
		t.Errorf("new word matches %d sentences, want 1", len(got))
	}
}

func TestRemoveWordNormalizesQueryForm(t *testing.T) {
	store, path := newTestStore(t, "The sea was calm.")

	count, err := store.RemoveWord("ＳＥＡ")
	if err != nil {
		t.Fatalf("RemoveWord: %v", err)
	}
	if count != 1 {
		t.Errorf("removed %d occurrences, want 1", count)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "The was calm."; got != want {
		t.Errorf("persisted corpus = %q, want %q", got, want)
	}
}

func TestNewMissingFileIsPersistenceError(t *testing.T) {
	_, err := New(Config{Path: filepath.Join(t.TempDir(), "absent.txt")})
	if !errors.Is(err, errs.ErrPersistence) {
		t.Fatalf("want ErrPersistence, got %v", err)
	}
}

func TestReload(t *testing.T) {
	store, _ := newTestStore(t, "The sea was calm.")

	other := filepath.Join(t.TempDir(), "other.txt")
	if err := os.WriteFile(other, []byte("A storm came."), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := store.Reload(other); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if store.Contains("sea") {
		t.Error("old corpus token survived reload")
	}
	if !store.Contains("storm") {
		t.Error("new corpus token missing after reload")
	}
}
