// Package errs defines the error kinds shared across the service. Handlers
// map these to HTTP statuses; everything else stays an internal error.
package errs

import "errors"

var (
	// ErrEmptyQuery indicates an empty or whitespace-only query/word input.
	ErrEmptyQuery = errors.New("empty query")

	// ErrUnknownWord indicates a word with no vector in the embedding model.
	ErrUnknownWord = errors.New("word not in embedding vocabulary")

	// ErrWordNotFound indicates a word with zero occurrences in the corpus.
	ErrWordNotFound = errors.New("word not found in corpus")

	// ErrNotReady indicates the corpus or embedding model has not finished loading.
	ErrNotReady = errors.New("index not ready")

	// ErrPersistence indicates the corpus artifact could not be read or written.
	ErrPersistence = errors.New("corpus persistence failure")
)
