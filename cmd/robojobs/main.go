// robojobs is a terminal game about programming a robot through a maze.
//
// Usage:
//
//	robojobs play             - Play in the terminal UI
//	robojobs list             - List level generators
//	robojobs maze             - Generate and print a level
//	robojobs check <file>     - Compile a job file and report errors
//	robojobs run <command>    - Run a command headless and print the result
//	robojobs jobs             - List, export or import saved jobs
//	robojobs records          - Show cleared levels
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.robojobs, ./configs)
//	--seed <value>      - RNG seed for level generation
//	--db <path>         - Job database; "home" uses ~/.robojobs/jobs.db
//	                      (default: in memory, nothing saved)
//	--log-level <name>  - Override the configured log level
//	--levels <dir>      - Register hand-made YAML levels as generators
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/robojobs/internal/config"
	"github.com/vovakirdan/robojobs/internal/generators/handmade"
	"github.com/vovakirdan/robojobs/internal/storage"

	// Import generators to register them
	_ "github.com/vovakirdan/robojobs/internal/generators/deathmountain"
	_ "github.com/vovakirdan/robojobs/internal/generators/simple"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagLocale   string
	flagLevels   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "robojobs",
	Short: "Robojobs - program a robot to find the heart of the maze",
	Long: `Robojobs is a terminal game: you type instructions for a small robot,
collect them into jobs, and send it through a maze to find the heart.

Available commands:
  play     - Play in the terminal UI
  list     - Show level generators
  maze     - Print a generated level
  check    - Compile a job file
  run      - Run a command headless
  jobs     - Manage saved jobs
  records  - Show cleared levels

Examples:
  robojobs play
  robojobs play --db ~/.robojobs/jobs.db --difficulty easy
  robojobs maze --width 3 --height 3 --seed 7
  robojobs play --levels ./levels --generator corridor
  robojobs check myjobs.txt
  robojobs run --jobs myjobs.txt "do explore"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagLocale != "" {
			gotext.Configure(flagLocale, localeLanguage(), "robojobs")
		}
		if flagLevels != "" {
			if _, err := handmade.RegisterAll(flagLevels); err != nil {
				return fmt.Errorf("loading levels: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to job database, \"home\" for ~/.robojobs/jobs.db (empty = in memory)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Directory with message translations")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of hand-made YAML levels to register as generators")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(recordsCmd)
}

// loadConfig reads the config and applies the global overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// openStore opens the --db database.
func openStore() (*storage.Store, error) {
	path := flagDBPath
	if path == "home" {
		path = config.DataPath("jobs.db")
		if path == "" {
			return nil, fmt.Errorf("no home directory for the job database")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	return storage.Open(path)
}

// seed returns the --seed value or a time-based one.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the logger. Logs go to --log-file when set, otherwise to
// fallback, which is io.Discard while the terminal UI owns the screen.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "robojobs",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}

func localeLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return "en_US"
}
