package cmd

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rewrite every legal document into the shared layout",
	Long: `Loads the chrome of both editions from their reference pages, then
transforms each legal document and writes back the ones that changed.
Documents already in the shared layout only receive missing heading ids.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringSlice("locale", nil, "limit the run to these editions (en, ru)")
	migrateCmd.Flags().Bool("dry-run", false, "report what would change without writing")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		cfg.DryRun = true
	}

	rawLocales, _ := cmd.Flags().GetStringSlice("locale")
	locales, err := parseLocales(rawLocales)
	if err != nil {
		return err
	}

	summary, err := runMigration(cmd.Context(), cfg, locales, true)
	printSummary(cmd.OutOrStdout(), summary)
	return err
}
