package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notetoquiz/notepack/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current pack (quiz, cards, summary, plan, html, share)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		pack, err := requireLastPack(cmd, st)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		var content string
		switch format {
		case "quiz":
			content = export.QuizText(pack.Quiz)
		case "cards":
			content, err = export.FlashcardsCSV(pack.Flashcards)
		case "summary":
			content = export.SummaryMarkdown(pack.Summary)
		case "plan":
			content = export.PlanMarkdown(pack.Plan)
		case "html":
			content, err = export.QuizHTML(pack)
		case "share":
			content = export.ShareText(pack)
		default:
			return fmt.Errorf("unknown format %q (want quiz, cards, summary, plan, html, or share)", format)
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "quiz", "Output format: quiz, cards, summary, plan, html, share")
	exportCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
}
