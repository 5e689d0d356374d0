// Package tui runs the interactive study session over a generated pack:
// take the quiz, see the score, then flip through the flashcard deck.
// The session only consumes a finished pack; generation stays outside.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/notetoquiz/notepack/internal/quiz"
	"github.com/notetoquiz/notepack/internal/store"
	"github.com/notetoquiz/notepack/internal/studypack"
)

type phase int

const (
	phaseQuiz phase = iota
	phaseResults
	phaseCards
)

// Options configures a study session. Store may be nil, in which case
// the graded attempt is simply not recorded.
type Options struct {
	Pack  *studypack.StudyPack
	Store *store.Store
}

// Model is the root Bubble Tea model for the study session.
type Model struct {
	pack  *studypack.StudyPack
	st    *store.Store
	width int

	phase     phase
	index     int
	choices   choiceList
	input     textinput.Model
	answered  bool
	correct   bool
	responses map[string]quiz.Response
	result    quiz.Result
	saveErr   error

	cardIndex int
	flipped   bool
}

func newModel(opts Options) Model {
	m := Model{
		pack:      opts.Pack,
		st:        opts.Store,
		responses: make(map[string]quiz.Response),
	}
	m.loadQuestion()
	return m
}

// loadQuestion resets per-question state for the current index.
func (m *Model) loadQuestion() {
	question := m.current()
	m.answered = false
	m.correct = false

	if question.Type == quiz.TypeMCQ {
		m.choices = newChoiceList(question.Choices, question.AnswerIndex)
		return
	}

	ti := textinput.New()
	ti.Placeholder = "Type your answer here..."
	ti.Focus()
	m.input = ti
}

func (m Model) current() quiz.Question {
	return m.pack.Quiz.Questions[m.index]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseQuiz:
			return m.updateQuiz(msg)
		case phaseResults:
			return m.updateResults(msg)
		case phaseCards:
			return m.updateCards(msg)
		}
	}
	return m, nil
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	question := m.current()

	if m.answered {
		if msg.String() == "enter" {
			if m.index+1 < len(m.pack.Quiz.Questions) {
				m.index++
				m.loadQuestion()
				return m, nil
			}
			return m.finishQuiz()
		}
		return m, nil
	}

	if question.Type == quiz.TypeMCQ {
		switch msg.String() {
		case "up", "k":
			m.choices.Move(-1)
		case "down", "j":
			m.choices.Move(1)
		case "enter":
			m.choices.Submit()
			m.responses[question.ID] = quiz.Response{ChoiceIndex: m.choices.Chosen}
			m.answered = true
			m.correct = m.choices.Chosen == question.AnswerIndex
		}
		return m, nil
	}

	if msg.String() == "enter" {
		response := quiz.Response{ChoiceIndex: -1, Text: m.input.Value()}
		m.responses[question.ID] = response
		single := quiz.Quiz{Questions: []quiz.Question{question}}
		graded := quiz.Grade(single, map[string]quiz.Response{question.ID: response})
		m.answered = true
		m.correct = graded.Correct == 1
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// finishQuiz grades the session and records the attempt.
func (m Model) finishQuiz() (tea.Model, tea.Cmd) {
	m.result = quiz.Grade(m.pack.Quiz, m.responses)
	if m.st != nil {
		_, err := m.st.AppendAttempt(context.Background(), m.pack.PackID, m.result.Correct, m.result.Total)
		m.saveErr = err
	}
	m.phase = phaseResults
	return m, nil
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f":
		m.phase = phaseCards
		m.cardIndex = 0
		m.flipped = false
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateCards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.pack.Flashcards)
	switch msg.String() {
	case "left", "h":
		m.cardIndex = (m.cardIndex - 1 + count) % count
		m.flipped = false
	case "right", "l":
		m.cardIndex = (m.cardIndex + 1) % count
		m.flipped = false
	case " ", "enter":
		m.flipped = !m.flipped
	case "esc":
		m.phase = phaseResults
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s study session", m.pack.Meta.Subject)))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseQuiz:
		b.WriteString(m.viewQuiz())
	case phaseResults:
		b.WriteString(m.viewResults())
	case phaseCards:
		b.WriteString(m.viewCards())
	}

	v.SetContent(b.String())
	return v
}

func (m Model) viewQuiz() string {
	question := m.current()
	var b strings.Builder

	b.WriteString(progressLine(m.index+1, len(m.pack.Quiz.Questions), m.width))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(question.Prompt))
	b.WriteString("\n")
	b.WriteString(contextStyle.Render(question.Context))
	b.WriteString("\n\n")

	if question.Type == quiz.TypeMCQ {
		b.WriteString(m.choices.View())
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.answered {
		b.WriteString("\n")
		if m.correct {
			b.WriteString(correctStyle.Render("Correct!"))
		} else {
			b.WriteString(incorrectStyle.Render("Not quite."))
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.current().Explanation))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("Enter to continue"))
	} else if question.Type == quiz.TypeMCQ {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("↑↓ select • Enter to answer"))
	} else {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Enter to submit"))
	}

	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(fmt.Sprintf("Score: %d / %d", m.result.Correct, m.result.Total)))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("Readiness estimate: %d%%", m.pack.Readiness)))
	b.WriteString("\n")
	if m.saveErr != nil {
		b.WriteString(incorrectStyle.Render("Could not record this attempt."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("f: review flashcards • q: quit"))
	return b.String()
}

func (m Model) viewCards() string {
	card := m.pack.Flashcards[m.cardIndex]
	face := card.Front
	if m.flipped {
		face = card.Back
	}

	var b strings.Builder
	b.WriteString(cardStyle.Render(face))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("Card %d/%d", m.cardIndex+1, len(m.pack.Flashcards))))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("←→ navigate • Space to flip • Esc back • q quit"))
	return b.String()
}

// Run starts the study session and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run study session: %w", err)
	}
	return nil
}
