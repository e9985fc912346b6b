package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evera-world/legalmigrate/internal/migrate"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when any legal document still needs migrating",
	Long:  `Runs the migration without writing or journaling and exits non-zero when a document would change or cannot be transformed. Intended for CI.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringSlice("locale", nil, "limit the run to these editions (en, ru)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.DryRun = true

	rawLocales, _ := cmd.Flags().GetStringSlice("locale")
	locales, err := parseLocales(rawLocales)
	if err != nil {
		return err
	}

	summary, err := runMigration(cmd.Context(), cfg, locales, false)
	printSummary(cmd.OutOrStdout(), summary)
	if err != nil {
		return err
	}
	if n := summary.Count(migrate.StatusWouldWrite); n > 0 {
		return fmt.Errorf("%d documents need migrating; run `legalmigrate migrate`", n)
	}
	return nil
}
