package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notetoquiz/notepack/internal/store"
	"github.com/notetoquiz/notepack/internal/studyplan"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show study-plan progress for the current pack",
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
		progress, err := st.PlanProgress(cmd.Context(), pack.PackID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		done := 0
		for _, day := range pack.Plan.Days {
			fmt.Fprintf(out, "%s (%s)\n", day.Title, day.TimeEstimate)
			for _, task := range day.Tasks {
				key := store.TaskKey(day.Day, task.ID)
				mark := " "
				if progress[key] {
					mark = "x"
					done++
				}
				fmt.Fprintf(out, "  [%s] %-6s %s (%d min)\n", mark, key, task.Text, task.Minutes)
			}
		}

		total := pack.Plan.TotalTasks()
		percent := 0
		if total > 0 {
			percent = done * 100 / total
		}
		fmt.Fprintf(out, "\n%d%% complete (%d/%d tasks)\n", percent, done, total)
		return nil
	},
}

var progressToggleCmd = &cobra.Command{
	Use:   "toggle <day-taskId>",
	Short: "Toggle a plan task's completion, e.g. 'toggle 2-a'",
	Args:  cobra.ExactArgs(1),
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

		key := args[0]
		if !taskExists(pack.Plan, key) {
			return fmt.Errorf("unknown task %q: run 'notepack progress' to list tasks", key)
		}

		progress, err := st.PlanProgress(cmd.Context(), pack.PackID)
		if err != nil {
			return err
		}
		next := !progress[key]
		if err := st.SetTaskDone(cmd.Context(), pack.PackID, key, next); err != nil {
			return err
		}

		state := "done"
		if !next {
			state = "not done"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task %s marked %s\n", key, state)
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressToggleCmd)
}

// taskExists reports whether the composite key names a task in the plan.
func taskExists(plan studyplan.Plan, key string) bool {
	for _, day := range plan.Days {
		for _, task := range day.Tasks {
			if store.TaskKey(day.Day, task.ID) == key {
				return true
			}
		}
	}
	return false
}
