package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/posture"
)

var rootCmd = &cobra.Command{
	Use:   "posture",
	Short: "Inspect Kinovea posture tool documents",
	Long: `posture loads generic posture tool documents the way Kinovea does and
prints what they define: the tool's name and icon, or its full geometry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(cmd, verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log skipped content at debug level")
}

// setupLogging sends loader diagnostics to stderr. Load faults are always
// shown; skipped content only with verbose.
func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	posture.SetLogger(slog.New(h))
}
