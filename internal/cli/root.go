package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/diegoclair/chore-board/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "board",
		Short: "Household chore rotation board",
		Long: `board serves the shared chore board and talks to it from the terminal.

Weekly categories rotate between persons by ISO week. Monthly tasks are split
between two groups that swap kitchen and surfaces duty.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(rotationCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(toggleCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// debugLogger writes to stderr with --verbose and nowhere otherwise.
func debugLogger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "debug: ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}
