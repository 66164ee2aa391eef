// snakefield is a classic snake game for the terminal, drawn over an
// animated particle field.
//
// Usage:
//
//	snakefield play          - Play a round (the default command)
//	snakefield scores        - Show recent scores and the best score
//	snakefield config        - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Use a specific config YAML
//	--fps <rate>    - Animation frame rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--db <path>     - Set database path (default: ~/.snakefield/scores.db)
//	--log <path>    - Write logs to a file
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakefield",
	Short: "Snakefield - Play snake in your terminal",
	Long: `Snakefield is the classic snake game on a square board, rendered in
the terminal over a drifting particle field.

Available commands:
  play     - Play a round (default)
  scores   - View recent scores and the best score
  config   - Print the effective configuration

Examples:
  snakefield
  snakefield play --difficulty hard
  snakefield play --config ./my-snake.yaml --watch
  snakefield scores --interactive
  snakefield config --defaults > ~/.snakefield/configs/snake.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Animation frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakefield/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (the game owns the terminal)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Play flags also apply to the bare root command
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger opens the log file named by --log. Without one, logs are
// discarded. The returned closer is never nil.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", flagLogPath, err)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "snakefield",
		ReportTimestamp: true,
	})
	return logger, f, nil
}
