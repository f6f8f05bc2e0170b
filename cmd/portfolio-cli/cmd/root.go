package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-cli",
	Short: "Portfolio operations tool",
	Long: `portfolio-cli is the operations companion for the portfolio site.

Available commands:
  content check    Query every catalogue entry and report fallback status
  email test       Send a test message through the configured sender
  version          Print the version number

Use "portfolio-cli [command] --help" for more information about a command.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, relying on environment variables")
		}
	})
}
