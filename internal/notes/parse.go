package notes

import (
	"regexp"
	"sort"
	"strings"
)

// maxKeywords caps the internal keyword ranking. Only the first
// ExposedKeywords of these appear on an assembled pack.
const maxKeywords = 14

// ExposedKeywords is how many ranked keywords a pack surfaces.
const ExposedKeywords = 8

// Parsed is the immutable result of running raw notes through the
// normalizer, tokenizer, and keyword ranker.
type Parsed struct {
	// Normalized is the cleaned, whitespace-collapsed input text.
	Normalized string

	// Tokens are lowercase content words: length >= 3, not purely
	// numeric, not on the stopword list.
	Tokens []string

	// Sentences are trimmed sentence fragments longer than 4 characters,
	// in input order. List bullets count as sentence breaks.
	Sentences []string

	// Keywords are unique tokens ordered by descending frequency, ties
	// broken by first occurrence. At most 14 entries.
	Keywords []string
}

var (
	exampleMarkerRE = regexp.MustCompile(`(?i)Example:`)
	newlineRunRE    = regexp.MustCompile(`\n+`)
	whitespaceRE    = regexp.MustCompile(`\s+`)
	bulletBreakRE   = regexp.MustCompile(`\s*[-•]\s+`)
	nonAlnumRE      = regexp.MustCompile(`[^a-z0-9\s]`)
	leadingBulletRE = regexp.MustCompile(`^[-•]+`)
	digitsOnlyRE    = regexp.MustCompile(`^\d+$`)
)

// Normalize cleans raw note text: strips "Example:" markers, flattens
// escaped and real newlines, converts em-dashes to plain dashes, and
// collapses repeated whitespace.
func Normalize(text string) string {
	s := exampleMarkerRE.ReplaceAllString(text, "")
	s = strings.ReplaceAll(s, `\n`, " ")
	s = newlineRunRE.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "—", " - ")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Parse runs the full normalization pipeline over raw text. Empty or
// all-filtered input yields empty slices, never an error; the caller
// decides whether that is a failure.
func Parse(text string) Parsed {
	normalized := Normalize(text)
	tokens := tokenize(normalized)
	return Parsed{
		Normalized: normalized,
		Tokens:     tokens,
		Sentences:  splitSentences(normalized),
		Keywords:   rankKeywords(tokens),
	}
}

// splitSentences converts bullet markers into sentence breaks, then
// splits on terminal punctuation. Fragments of 4 characters or fewer
// are dropped.
func splitSentences(normalized string) []string {
	source := bulletBreakRE.ReplaceAllString(normalized, ". ")
	source = whitespaceRE.ReplaceAllString(source, " ")
	source = strings.TrimSpace(source)

	var sentences []string
	for _, piece := range strings.FieldsFunc(source, isSentenceEnd) {
		piece = strings.TrimSpace(piece)
		if len(piece) > 4 {
			sentences = append(sentences, piece)
		}
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// tokenize lowercases, strips everything outside [a-z0-9 whitespace],
// and filters short, numeric, and stopword tokens.
func tokenize(normalized string) []string {
	cleaned := nonAlnumRE.ReplaceAllString(strings.ToLower(normalized), "")

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < 3 {
			continue
		}
		if IsStopword(tok) {
			continue
		}
		if digitsOnlyRE.MatchString(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// rankKeywords orders unique tokens by descending frequency. Ties keep
// the order of first occurrence, so identical input always ranks
// identically. The result is capped at maxKeywords.
func rankKeywords(tokens []string) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var unique []string
	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
			unique = append(unique, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return firstSeen[unique[i]] < firstSeen[unique[j]]
	})

	if len(unique) > maxKeywords {
		unique = unique[:maxKeywords]
	}
	return unique
}

// ContentTokens extracts up to max lowercase content words from a single
// sentence: length >= 3 and not a stopword. Used for short-answer keyword
// matching, where numeric tokens are kept.
func ContentTokens(sentence string, max int) []string {
	cleaned := nonAlnumRE.ReplaceAllString(strings.ToLower(sentence), "")

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < 3 || IsStopword(tok) {
			continue
		}
		tokens = append(tokens, tok)
		if len(tokens) == max {
			break
		}
	}
	return tokens
}

// CleanBullet strips leading bullet markers and escaped newlines from a
// sentence fragment.
func CleanBullet(sentence string) string {
	s := leadingBulletRE.ReplaceAllString(sentence, "")
	s = strings.ReplaceAll(s, `\n`, " ")
	return strings.TrimSpace(s)
}

// Summarize produces the display form of a sentence: bullet markers
// stripped, whitespace collapsed, truncated to 120 characters with an
// ellipsis.
func Summarize(sentence string) string {
	if sentence == "" {
		return ""
	}
	cleaned := whitespaceRE.ReplaceAllString(CleanBullet(sentence), " ")
	cleaned = strings.TrimSpace(cleaned)
	runes := []rune(cleaned)
	if len(runes) > 120 {
		return string(runes[:117]) + "..."
	}
	return cleaned
}

// Capitalize upper-cases the first rune of a word.
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(word)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
