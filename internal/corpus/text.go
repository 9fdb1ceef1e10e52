package corpus

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	sentenceRe   = regexp.MustCompile(`[^.!?]+[.!?]*`)
	wordRe       = regexp.MustCompile(`[\p{L}\p{N}_']+`)
	blankRunRe   = regexp.MustCompile(`[ \t]+`)
	spacePunctRe = regexp.MustCompile(` ([.,!?;:])`)
)

// Normalize applies NFKC normalization and lower-casing so that matching is
// stable across composed/decomposed input and letter case.
func Normalize(text string) string {
	return strings.ToLower(norm.NFKC.String(text))
}

// SplitSentences splits free text into sentences on ./!/? boundaries. The
// trailing delimiter stays with its sentence. Whitespace-only fragments are
// dropped.
func SplitSentences(text string) []string {
	raw := sentenceRe.FindAllString(text, -1)
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sentences = append(sentences, s)
	}
	return sentences
}

// Tokenize returns the word tokens of the text, in order, punctuation dropped.
func Tokenize(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// wholeWordPattern compiles a case-insensitive whole-word matcher for w.
// Replace/remove/search all use whole-word semantics; substring matching
// would make ReplaceWord("cat", "dog") rewrite "catalog".
func wholeWordPattern(w string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
}

// flattenSentence collapses internal newlines and surrounding space so a
// sentence renders on one line in API responses.
func flattenSentence(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// contextWindow extracts up to size runes on each side of the first
// case-insensitive occurrence of word in sentence. This is the highlight
// window the frontend renders. Returns the whole sentence when size is zero
// or the word is not found.
func contextWindow(sentence, word string, size int) string {
	if size <= 0 {
		return flattenSentence(sentence)
	}
	byteIdx := strings.Index(strings.ToLower(sentence), strings.ToLower(word))
	if byteIdx < 0 {
		return flattenSentence(sentence)
	}

	runes := []rune(sentence)
	runeIdx := len([]rune(sentence[:byteIdx]))
	wordLen := len([]rune(word))

	start := max(runeIdx-size, 0)
	end := min(runeIdx+wordLen+size, len(runes))
	return flattenSentence(string(runes[start:end]))
}

// collapseSpacing tidies text after a token removal: runs of blanks become a
// single space and stray space before closing punctuation is dropped.
func collapseSpacing(text string) string {
	text = blankRunRe.ReplaceAllString(text, " ")
	text = spacePunctRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
