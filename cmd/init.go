package cmd

import (
	"github.com/spf13/cobra"

	"github.com/evera-world/legalmigrate/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize legalmigrate configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to locate the site root and choose exclusions, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
