package notes

// stopwords is the closed list of high-frequency function words excluded
// from token and keyword analysis.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "an": {}, "to": {}, "of": {}, "in": {},
	"for": {}, "on": {}, "with": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "as": {}, "by": {}, "that": {}, "this": {},
	"it": {}, "from": {}, "or": {}, "at": {}, "into": {}, "over": {},
	"after": {}, "before": {}, "about": {}, "their": {}, "them": {},
	"they": {}, "we": {}, "you": {}, "your": {}, "our": {}, "not": {},
	"no": {}, "yes": {}, "if": {}, "than": {}, "then": {}, "but": {},
	"so": {}, "such": {}, "can": {}, "also": {}, "more": {}, "most": {},
	"less": {}, "least": {}, "up": {}, "down": {}, "out": {}, "off": {},
	"within": {}, "without": {},
}

// IsStopword reports whether word is on the stopword list.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
