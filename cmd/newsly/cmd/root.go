package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/cmd/newsly/cmd/export"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/cmd/newsly/cmd/serve"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/cmd/newsly/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "newsly",
	Short: "An AI news reporter that turns audio and images into revisable news reports",
	Long: `An AI news reporter that turns audio and images into revisable news reports.
- Upload an audio file and/or image through the web UI or API
- The audio is transcribed and the image described, then synthesized into a report
- Revise the report with free-text feedback until it reads right
- Save the final report to local files, object storage, and the database.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
