package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notetoquiz/notepack/internal/studypack"
)

// sampleNotes gives first-time users something to generate from.
const sampleNotes = `Photosynthesis converts light into chemical energy inside plant cells.
Chlorophyll absorbs light, mostly in the blue and red wavelengths.
- Light reactions split water and release oxygen
- The Calvin cycle fixes carbon dioxide into glucose
Energy stored as glucose drives plant growth and respiration.
Stomata regulate gas exchange and water loss on the leaf surface.`

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a study pack from notes",
	Long: "Reads notes from --file, stdin, or the built-in sample, runs the " +
		"generation pipeline, and stores the result as the current pack.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readNotes(cmd)
		if err != nil {
			return err
		}

		subject, _ := cmd.Flags().GetString("subject")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		questions, _ := cmd.Flags().GetInt("questions")

		pack, err := studypack.Generate(studypack.Request{
			Text:          text,
			Subject:       subject,
			Difficulty:    studypack.Difficulty(difficulty),
			QuestionCount: questions,
		})
		if errors.Is(err, studypack.ErrEmptyInput) {
			return fmt.Errorf("no notes to work with: paste some notes or pass --sample")
		}
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.SaveLastPack(cmd.Context(), pack); err != nil {
			return fmt.Errorf("save pack: %w", err)
		}

		printOverview(cmd.OutOrStdout(), pack)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", "Read notes from a file instead of stdin")
	generateCmd.Flags().Bool("sample", false, "Use the built-in sample notes")
	generateCmd.Flags().String("subject", "General", "Subject label for the pack")
	generateCmd.Flags().String("difficulty", string(studypack.DifficultyMedium), "Difficulty label (Easy, Medium, Hard)")
	generateCmd.Flags().IntP("questions", "n", studypack.DefaultQuestionCount, "Number of quiz questions")
}

// readNotes resolves the note text from --sample, --file, or stdin.
func readNotes(cmd *cobra.Command) (string, error) {
	if sample, _ := cmd.Flags().GetBool("sample"); sample {
		return sampleNotes, nil
	}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read notes file: %w", err)
		}
		return string(raw), nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(raw), nil
}

// printOverview writes a short description of the generated pack.
func printOverview(w io.Writer, pack *studypack.StudyPack) {
	fmt.Fprintf(w, "Pack %s (%s, %s)\n", pack.PackID, pack.Meta.Subject, pack.Meta.Difficulty)
	fmt.Fprintf(w, "  Quiz:       %d questions (%d MCQ, %d short answer)\n",
		len(pack.Quiz.Questions), pack.Quiz.MCQCount(), pack.Quiz.ShortCount())
	fmt.Fprintf(w, "  Flashcards: %d cards\n", len(pack.Flashcards))
	fmt.Fprintf(w, "  Summary:    %d sections\n", len(pack.Summary.Sections))
	fmt.Fprintf(w, "  Plan:       %d days, %d tasks\n", len(pack.Plan.Days), pack.Plan.TotalTasks())
	fmt.Fprintf(w, "  Readiness:  %d%%\n", pack.Readiness)
	fmt.Fprintf(w, "  Keywords:   %s\n", strings.Join(pack.Keywords, ", "))
}
