package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iq360",
	Short: "The Thinking Levels Game",
	Long:  "360IQ is a five-level terminal game that evaluates your answers with an LLM and maps your thinking profile.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: gemini, openai, anthropic, openrouter or mock (overrides IQ360_LLM_PROVIDER)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides IQ360_LOG_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides IQ360_LOG_LEVEL)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the opening animation")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(versionCmd)
}

// stringFlag returns the flag value, falling back to the environment
// variable when the flag is unset.
func stringFlag(cmd *cobra.Command, name, envVar string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return lookupEnv(envVar)
}
