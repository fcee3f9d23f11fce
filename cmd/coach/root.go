package coach

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "coach tracks workouts, nutrition and body weight from your terminal",
	Long:  "coach is a local-first fitness tracking CLI with a profile-driven energy model, daily logging, analytics, and an optional REST API.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
