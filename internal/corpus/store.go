// Package corpus owns the searchable text corpus: a flat text artifact loaded
// once at startup, searched by sentence and mutated in place by whole-word
// edits. Every mutation rewrites the backing file atomically.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dwood/corpus-search/internal/errs"
	"github.com/dwood/corpus-search/internal/models"
)

// Store holds the corpus text and serializes writers against readers.
// Searches take the read lock; ReplaceWord/RemoveWord/AddWord take the write
// lock, so edits are serialized against each other and against in-flight
// searches of the same snapshot.
type Store struct {
	mu          sync.RWMutex
	path        string
	text        string
	sentences   []string
	tokens      map[string]struct{}
	contextSize int
}

// Config holds the store construction parameters.
type Config struct {
	// Path is the corpus text file, read at construction and rewritten by edits.
	Path string
	// ContextSize is the highlight window in runes on each side of a match.
	// Zero means whole sentences.
	ContextSize int
}

// New loads the corpus from cfg.Path. A missing or unreadable file is a
// persistence failure, not an empty corpus.
func New(cfg Config) (*Store, error) {
	s := &Store{
		path:        cfg.Path,
		contextSize: cfg.ContextSize,
	}
	if err := s.Reload(cfg.Path); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory corpus with the contents of path and makes
// path the persistence target for subsequent edits.
func (s *Store) Reload(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", errs.ErrPersistence, path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	s.setText(string(data))

	log.Info().
		Str("path", path).
		Int("sentences", len(s.sentences)).
		Int("vocabulary", len(s.tokens)).
		Msg("Corpus loaded")
	return nil
}

// setText updates the derived sentence and token views. Callers hold the
// write lock.
func (s *Store) setText(text string) {
	s.text = text
	s.sentences = SplitSentences(text)
	s.tokens = make(map[string]struct{})
	for _, tok := range Tokenize(Normalize(text)) {
		s.tokens[tok] = struct{}{}
	}
}

// FindMatchingSentences returns every sentence containing word as a
// case-insensitive whole-word match, in corpus order. An empty word or a
// word with zero occurrences yields an empty slice, not an error; rejecting
// empty queries is the coordinator's job.
func (s *Store) FindMatchingSentences(word string) ([]models.SearchResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matchLocked(word, nil), nil
}

// FindSentencesForWords runs the whole-word match for each word and merges
// the hits in corpus-scan order. A sentence matching several trigger words
// appears once, attributed to the first word that hit it.
func (s *Store) FindSentencesForWords(words []string) ([]models.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var results []models.SearchResult
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		results = append(results, s.matchLocked(w, seen)...)
	}
	return results, nil
}

// matchLocked scans the sentence list under a held lock. seen, when non-nil,
// deduplicates across calls for multi-word searches.
func (s *Store) matchLocked(word string, seen map[string]struct{}) []models.SearchResult {
	re := wholeWordPattern(Normalize(word))
	var results []models.SearchResult
	for _, sentence := range s.sentences {
		if !re.MatchString(Normalize(sentence)) {
			continue
		}
		text := flattenSentence(sentence)
		if seen != nil {
			if _, dup := seen[text]; dup {
				continue
			}
			seen[text] = struct{}{}
		}
		results = append(results, models.SearchResult{
			Text:        text,
			MatchedTerm: word,
			Snippet:     contextWindow(sentence, word, s.contextSize),
		})
	}
	return results
}

// ReplaceWord rewrites every whole-word occurrence of old with new and
// persists the result. Returns the replacement count; zero occurrences is
// ErrWordNotFound and the artifact is left untouched. oldWord is normalized
// the same way search queries are; the corpus text is matched as written.
func (s *Store) ReplaceWord(oldWord, newWord string) (int, error) {
	oldWord = strings.TrimSpace(oldWord)
	newWord = strings.TrimSpace(newWord)
	if oldWord == "" || newWord == "" {
		return 0, errs.ErrEmptyQuery
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	re := wholeWordPattern(Normalize(oldWord))
	count := len(re.FindAllStringIndex(s.text, -1))
	if count == 0 {
		return 0, fmt.Errorf("%w: %q", errs.ErrWordNotFound, oldWord)
	}

	updated := re.ReplaceAllLiteralString(s.text, newWord)
	if err := s.persistLocked(updated); err != nil {
		return 0, err
	}
	s.setText(updated)

	log.Info().Str("old", oldWord).Str("new", newWord).Int("count", count).Msg("Corpus word replaced")
	return count, nil
}

// RemoveWord deletes every whole-word occurrence of word and persists the
// result. The surrounding sentence survives minus the token. Zero
// occurrences is ErrWordNotFound. word is normalized the same way search
// queries are; the corpus text is matched as written.
func (s *Store) RemoveWord(word string) (int, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return 0, errs.ErrEmptyQuery
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	re := wholeWordPattern(Normalize(word))
	count := len(re.FindAllStringIndex(s.text, -1))
	if count == 0 {
		return 0, fmt.Errorf("%w: %q", errs.ErrWordNotFound, word)
	}

	updated := collapseSpacing(re.ReplaceAllLiteralString(s.text, ""))
	if err := s.persistLocked(updated); err != nil {
		return 0, err
	}
	s.setText(updated)

	log.Info().Str("word", word).Int("count", count).Msg("Corpus word removed")
	return count, nil
}

// AddWord appends word to the corpus tail and persists.
func (s *Store) AddWord(word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return errs.ErrEmptyQuery
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.text
	if updated != "" && !strings.HasSuffix(updated, " ") && !strings.HasSuffix(updated, "\n") {
		updated += " "
	}
	updated += word

	if err := s.persistLocked(updated); err != nil {
		return err
	}
	s.setText(updated)

	log.Info().Str("word", word).Msg("Word added to corpus")
	return nil
}

// Contains reports whether word occurs in the corpus as a token. Used by the
// embedding index to restrict expansion candidates to corpus words.
func (s *Store) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[Normalize(strings.TrimSpace(word))]
	return ok
}

// Words returns the corpus word tokens in order.
func (s *Store) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Tokenize(s.text)
}

// SentenceCount returns the number of sentences in the current corpus.
func (s *Store) SentenceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sentences)
}

// persistLocked writes the full corpus to a temp file in the target
// directory and renames it over the artifact, so a failed write never leaves
// a partially rewritten corpus. Callers hold the write lock.
func (s *Store) persistLocked(text string) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".corpus-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", errs.ErrPersistence, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", errs.ErrPersistence, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %v", errs.ErrPersistence, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", errs.ErrPersistence, s.path, err)
	}
	return nil
}
