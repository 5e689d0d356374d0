package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notetoquiz/notepack/internal/flashcard"
	"github.com/notetoquiz/notepack/internal/quiz"
	"github.com/notetoquiz/notepack/internal/studypack"
)

func testPack(t *testing.T) *studypack.StudyPack {
	t.Helper()
	pack, err := studypack.GenerateAt(studypack.Request{
		Text: `Photosynthesis converts light into chemical energy inside plant cells.
Chlorophyll absorbs light in the blue and red wavelengths.
The light reactions split water and release oxygen.
The Calvin cycle fixes carbon dioxide into glucose.
Stomata regulate gas exchange on the leaf surface.`,
		Subject:       "Biology",
		Difficulty:    studypack.DifficultyMedium,
		QuestionCount: 5,
	}, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return pack
}

func TestQuizText(t *testing.T) {
	pack := testPack(t)
	out := QuizText(pack.Quiz)

	assert.True(t, strings.HasPrefix(out, "Practice Quiz\n"))
	assert.Contains(t, out, "Answer Key")
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "   A. ")

	// Every answer-key line matches the question it keys.
	parts := strings.SplitN(out, "Answer Key\n", 2)
	require.Len(t, parts, 2)
	keyLines := strings.Split(strings.TrimSpace(parts[1]), "\n")
	require.Len(t, keyLines, len(pack.Quiz.Questions))
	for i, question := range pack.Quiz.Questions {
		want := question.AnswerText
		if question.Type == quiz.TypeMCQ {
			want = question.Choices[question.AnswerIndex]
		}
		assert.True(t, strings.HasSuffix(keyLines[i], want),
			"key line %d = %q, want suffix %q", i+1, keyLines[i], want)
	}
}

func TestFlashcardsCSVRoundTrip(t *testing.T) {
	cards := []flashcard.Card{
		{ID: "card-1", Front: "Chlorophyll", Back: "Absorbs light, mostly blue and red"},
		{ID: "card-2", Front: "Stomata", Back: "Pores that say \"open\" to gases"},
	}

	out, err := FlashcardsCSV(cards)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Front,Back\n"))

	parsed, err := ParseFlashcardsCSV(out)
	require.NoError(t, err)
	require.Len(t, parsed, len(cards))
	for i := range cards {
		assert.Equal(t, cards[i].Front, parsed[i].Front)
		assert.Equal(t, cards[i].Back, parsed[i].Back)
	}
}

func TestFlashcardsCSVEmptyDeck(t *testing.T) {
	out, err := FlashcardsCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Front,Back\n", out)
}

func TestSummaryMarkdown(t *testing.T) {
	pack := testPack(t)
	out := SummaryMarkdown(pack.Summary)

	for _, section := range pack.Summary.Sections {
		assert.Contains(t, out, "## "+section.Title)
		for _, bullet := range section.Bullets {
			assert.Contains(t, out, "- "+bullet)
		}
	}
}

func TestPlanMarkdown(t *testing.T) {
	pack := testPack(t)
	out := PlanMarkdown(pack.Plan)

	assert.Contains(t, out, "### Day 1 (25 min)")
	assert.Contains(t, out, "### Day 7 (55 min)")
	assert.Equal(t, pack.Plan.TotalTasks(), strings.Count(out, "- [ ] "))
}

func TestQuizHTML(t *testing.T) {
	pack := testPack(t)
	out, err := QuizHTML(pack)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Biology Quiz</title>")
	assert.Contains(t, out, "Biology Practice Quiz")
	assert.Contains(t, out, "Mar 14, 2026 09:30")
	for i := range pack.Quiz.Questions {
		assert.Contains(t, out, "Q"+string(rune('1'+i))+". ")
	}
}

func TestQuizHTMLEscapes(t *testing.T) {
	pack := &studypack.StudyPack{
		Meta: studypack.Meta{Subject: "A<B>", Timestamp: time.Unix(0, 0)},
		Quiz: quiz.Quiz{Questions: []quiz.Question{{
			ID:      "short-1",
			Type:    quiz.TypeShortAnswer,
			Prompt:  "Explain <script> safety",
			Context: "x & y",
		}}},
	}
	out, err := QuizHTML(pack)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestShareText(t *testing.T) {
	pack := testPack(t)
	out := ShareText(pack)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Biology • Medium • 5 Questions", lines[0])
	assert.Contains(t, lines[1], "Estimated readiness: ")
	assert.True(t, strings.HasSuffix(lines[1], "%"))
	assert.True(t, strings.HasPrefix(lines[2], "Top keywords: "))

	// At most three keywords, each capitalized.
	listed := strings.Split(strings.TrimPrefix(lines[2], "Top keywords: "), ", ")
	assert.LessOrEqual(t, len(listed), 3)
	for _, keyword := range listed {
		first := []rune(keyword)[0]
		assert.False(t, first >= 'a' && first <= 'z', "keyword %q not capitalized", keyword)
	}
}
