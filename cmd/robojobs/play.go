package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/robojobs/internal/config"
	"github.com/vovakirdan/robojobs/internal/core"
	"github.com/vovakirdan/robojobs/internal/game"
	"github.com/vovakirdan/robojobs/internal/platform/tui"
	"github.com/vovakirdan/robojobs/internal/registry"
)

var (
	flagGenerator  string
	flagDifficulty string
	flagJobsFile   string
	flagFPS        int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal UI",
	Long: `Start a game. Type instructions at the prompt to move the robot, or
collect them into jobs and run those.

Controls:
  Enter   - Run the typed instruction / next level
  Tab     - Accept the first completion
  Ctrl+N  - Create or open a job
  Ctrl+S  - Build the job being edited
  Esc     - Close the job editor
  Ctrl+X  - Halt the robot
  Ctrl+C  - Quit

Difficulty options:
  easy   - Start with 2x2 rooms and grow
  normal - Start with 3x3 rooms and grow
  hard   - Start with 5x5 rooms and grow
  fixed  - Keep the configured size

Examples:
  robojobs play
  robojobs play --difficulty easy
  robojobs play --generator simple
  robojobs play --jobs ./myjobs.txt --db ~/.robojobs/jobs.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagGenerator, "generator", "", "Level generator (see 'robojobs list')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagJobsFile, "jobs", "", "Job file to load before playing")
	playCmd.Flags().IntVar(&flagFPS, "fps", 20, "UI tick rate")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyPlayFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var jobs map[string]string
	if flagJobsFile != "" {
		sources, err := readJobFile(flagJobsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		jobs = sourceMap(sources)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open job database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	world, runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Levels:  game.NewLevels(cfg, runtime.Seed),
		Store:   store,
		Jobs:    jobs,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if world.Cleared > 0 {
		fmt.Printf("Levels cleared: %d\n", world.Cleared)
	}
}

// applyPlayFlags applies --generator and --difficulty on top of the config.
func applyPlayFlags(cfg *config.Config) error {
	if flagGenerator != "" {
		cfg.Maze.Generator = flagGenerator
	}
	if !registry.Exists(cfg.Maze.Generator) {
		return fmt.Errorf("unknown generator %q, run 'robojobs list' to see them", cfg.Maze.Generator)
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if w, _ := config.StartSizeForPreset(preset); w == 0 && !config.IsFixedPreset(preset) {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyPreset(cfg, preset)
	}
	return cfg.Validate()
}
