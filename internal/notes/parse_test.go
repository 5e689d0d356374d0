package notes

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \n\t  ", ""},
		{"collapses whitespace", "light   absorbs\t\tenergy", "light absorbs energy"},
		{"strips example markers", "Example: water boils", "water boils"},
		{"marker is case-insensitive", "example: water boils", "water boils"},
		{"escaped newlines", `first\nsecond`, "first second"},
		{"real newlines", "first\n\nsecond", "first second"},
		{"em-dash becomes dash", "cells—the unit of life", "cells - the unit of life"},
		{"trims", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "splits on terminal punctuation",
			input: "Plants grow. Water helps! Does light matter?",
			want:  []string{"Plants grow", "Water helps", "Does light matter"},
		},
		{
			name:  "bullets become sentence breaks",
			input: "Key points - light reactions split water - the cycle fixes carbon",
			want:  []string{"Key points", "light reactions split water", "the cycle fixes carbon"},
		},
		{
			name:  "short fragments dropped",
			input: "Hi. Photosynthesis needs light.",
			want:  []string{"Photosynthesis needs light"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input).Sentences
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sentences = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and filters",
			input: "The Mitochondria IS the powerhouse",
			want:  []string{"mitochondria", "powerhouse"},
		},
		{
			name:  "drops short tokens",
			input: "an ox is big but mitosis matters",
			want:  []string{"big", "mitosis", "matters"},
		},
		{
			name:  "drops pure digits but keeps mixed",
			input: "In 1859 Darwin wrote ch4 methane",
			want:  []string{"darwin", "wrote", "ch4", "methane"},
		},
		{
			name:  "strips punctuation",
			input: "DNA-replication: copies (genes)!",
			want:  []string{"dnareplication", "copies", "genes"},
		},
		{
			name:  "all stopwords",
			input: "the and with from they",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input).Tokens
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeywordRanking(t *testing.T) {
	parsed := Parse("energy light energy plant light energy")
	want := []string{"energy", "light", "plant"}
	if !reflect.DeepEqual(parsed.Keywords, want) {
		t.Errorf("keywords = %v, want %v", parsed.Keywords, want)
	}
}

func TestKeywordTieBreakByFirstOccurrence(t *testing.T) {
	parsed := Parse("zebra apple zebra apple lion")
	want := []string{"zebra", "apple", "lion"}
	if !reflect.DeepEqual(parsed.Keywords, want) {
		t.Errorf("keywords = %v, want %v", parsed.Keywords, want)
	}
}

func TestKeywordsNoDuplicatesAndCapped(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa",
	}
	parsed := Parse(strings.Join(words, " "))

	if len(parsed.Keywords) != maxKeywords {
		t.Fatalf("keyword count = %d, want %d", len(parsed.Keywords), maxKeywords)
	}
	seen := make(map[string]bool)
	for _, keyword := range parsed.Keywords {
		if seen[keyword] {
			t.Errorf("duplicate keyword %q", keyword)
		}
		seen[keyword] = true
	}
}

func TestContentTokens(t *testing.T) {
	got := ContentTokens("The Calvin cycle fixes carbon dioxide into glucose molecules quickly", 5)
	want := []string{"calvin", "cycle", "fixes", "carbon", "dioxide"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ContentTokens = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	short := Summarize("- Plants grow toward light")
	if short != "Plants grow toward light" {
		t.Errorf("Summarize = %q", short)
	}

	long := Summarize(strings.Repeat("x", 200))
	if len([]rune(long)) != 120 {
		t.Errorf("summarized length = %d, want 120", len([]rune(long)))
	}
	if !strings.HasSuffix(long, "...") {
		t.Errorf("expected ellipsis suffix, got %q", long[len(long)-10:])
	}

	if got := Summarize(""); got != "" {
		t.Errorf("Summarize(\"\") = %q, want empty", got)
	}
}

func TestCleanBullet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"- bullet text", "bullet text"},
		{"• dotted bullet", "dotted bullet"},
		{`line\nbreak`, "line break"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := CleanBullet(tt.input); got != tt.want {
			t.Errorf("CleanBullet(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"photosynthesis", "Photosynthesis"},
		{"DNA", "DNA"},
		{"a", "A"},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.input); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	parsed := Parse("")
	if parsed.Normalized != "" || len(parsed.Tokens) != 0 ||
		len(parsed.Sentences) != 0 || len(parsed.Keywords) != 0 {
		t.Errorf("expected empty parse result, got %+v", parsed)
	}
}
