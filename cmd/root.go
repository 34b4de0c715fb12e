package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/daycheck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "daycheck",
	Short: "Daily self check-in survey",
	Long:  "daycheck asks a short set of 5-point questions and scores your day by category.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Path to a question set YAML file (overrides DAYCHECK_QUESTIONS env var)")
	rootCmd.Flags().Bool("plain", false, "Use the line-oriented renderer even on a terminal")
	rootCmd.Flags().String("log-file", "", "Write JSON logs to this file (overrides DAYCHECK_LOG env var)")
	rootCmd.Flags().Bool("debug", false, "Log every transition")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the run configuration from flags (highest priority),
// then DAYCHECK_* env vars, then defaults.
func resolveConfig(cmd *cobra.Command) config.Config {
	cfg := config.DefaultConfig()
	// Subcommands only carry the persistent flags; the rest read as zero.
	cfg.QuestionsPath, _ = cmd.Flags().GetString("questions")
	cfg.Plain, _ = cmd.Flags().GetBool("plain")
	cfg.Log.File, _ = cmd.Flags().GetString("log-file")
	cfg.Log.Debug, _ = cmd.Flags().GetBool("debug")
	cfg.ApplyEnv(nil)
	return cfg
}
