package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notetoquiz/notepack/internal/store"
	"github.com/notetoquiz/notepack/internal/studypack"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current study pack",
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

		printOverview(cmd.OutOrStdout(), pack)

		attempts, err := st.Attempts(cmd.Context(), pack.PackID)
		if err != nil {
			return err
		}
		if len(attempts) > 0 {
			last := attempts[len(attempts)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "  Last quiz:  %d/%d on %s\n",
				last.Correct, last.Total, last.TakenAt.Format("Jan 2 15:04"))
		}
		return nil
	},
}

// requireLastPack loads the stored pack or fails with a hint to
// generate one first.
func requireLastPack(cmd *cobra.Command, st *store.Store) (*studypack.StudyPack, error) {
	pack, err := st.LastPack(cmd.Context())
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return nil, fmt.Errorf("no study pack yet: run 'notepack generate' first")
	}
	return pack, nil
}
