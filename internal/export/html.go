package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/notetoquiz/notepack/internal/studypack"
)

// quizPage is the standalone printable quiz document.
var quizPage = template.Must(template.New("quiz").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>{{.Subject}} Quiz</title></head>
<body style="font-family: Arial, sans-serif; padding: 24px;">
<h1>{{.Subject}} Practice Quiz</h1>
<p>{{.Generated}}</p>
{{range .Questions}}<h3>Q{{.Number}}. {{.Prompt}}</h3>
<p>{{.Context}}</p>
{{if .Choices}}<ul>{{range .Choices}}<li>{{.}}</li>{{end}}</ul>
{{end}}<p><strong>Answer:</strong> {{.Answer}}</p>
<p><em>{{.Explanation}}</em></p>
{{end}}</body>
</html>
`))

type quizPageData struct {
	Subject   string
	Generated string
	Questions []quizPageQuestion
}

type quizPageQuestion struct {
	Number      int
	Prompt      string
	Context     string
	Choices     []string
	Answer      string
	Explanation string
}

// QuizHTML renders the quiz as a self-contained HTML document with
// answers and explanations inline.
func QuizHTML(pack *studypack.StudyPack) (string, error) {
	data := quizPageData{
		Subject:   pack.Meta.Subject,
		Generated: pack.Meta.Timestamp.Format("Jan 2, 2006 15:04"),
	}
	for i, question := range pack.Quiz.Questions {
		data.Questions = append(data.Questions, quizPageQuestion{
			Number:      i + 1,
			Prompt:      question.Prompt,
			Context:     question.Context,
			Choices:     question.Choices,
			Answer:      answerFor(question),
			Explanation: question.Explanation,
		})
	}

	var b strings.Builder
	if err := quizPage.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render quiz page: %w", err)
	}
	return b.String(), nil
}
