package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notetoquiz/notepack/internal/tui"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start an interactive study session on the current pack",
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

		return tui.Run(tui.Options{Pack: pack, Store: st})
	},
}
