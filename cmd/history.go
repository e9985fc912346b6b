package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent document outcomes from the journal",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of records to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	database, store, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if database == nil {
		return errors.New("the journal is disabled (journal_path is empty)")
	}
	defer database.Close()

	records, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECORDED\tRUN\tSTATUS\tSHAPE\tPATH\tIDS")
	for _, r := range records {
		run := r.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		shape := r.Shape
		if shape == "" {
			shape = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			r.RecordedAt.Local().Format("2006-01-02 15:04:05"), run, r.Status, shape, r.RelPath, len(r.AssignedIDs))
	}
	return w.Flush()
}
