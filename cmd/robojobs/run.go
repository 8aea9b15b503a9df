package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robojobs/internal/game"
	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/shell"
)

var flagMaxCycles int

var runCmd = &cobra.Command{
	Use:   "run <instruction>",
	Short: "Run an instruction headless and print the result",
	Long: `Generate a level, load jobs, type one instruction and let the robot
run until it stops, wins, or hits --max-cycles. Prints the final map.

Examples:
  robojobs run --generator simple "forward"
  robojobs run --jobs ./myjobs.txt --seed 3 "do explore"`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagGenerator, "generator", "", "Level generator (see 'robojobs list')")
	runCmd.Flags().StringVar(&flagJobsFile, "jobs", "", "Job file to load")
	runCmd.Flags().IntVar(&flagMaxCycles, "max-cycles", 10000, "Stop after this many cycles")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyPlayFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sources := map[string]string{}
	if flagJobsFile != "" {
		loaded, err := readJobFile(flagJobsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sources = sourceMap(loaded)
	}

	r := game.NewReducer(shell.New(cfg.Shell, logger), game.NewLevels(cfg, seed()), logger)
	world, errs := r.LoadSources(game.NewWorld(), sources)
	for name, e := range errs {
		styleError.Printf("job %s: ", name)
		fmt.Println(e.Message)
	}

	world = r.Reduce(world, game.Loaded{})
	if world.Phase != game.PhaseComposing {
		fmt.Fprintln(os.Stderr, "Error: level generation failed")
		os.Exit(1)
	}

	line := strings.TrimRight(args[0], "\n") + "\n"
	world = r.Reduce(world, game.NewCommand{Text: line})
	if world.CommandError != nil {
		styleError.Printf("Error: ")
		fmt.Println(world.CommandError.Message)
		os.Exit(1)
	}
	if world.Phase != game.PhaseRunning {
		styleError.Printf("Error: ")
		fmt.Printf("the instruction is incomplete, try one of: %s\n", strings.Join(world.Completions, ", "))
		os.Exit(1)
	}

	world, _ = r.Simulate(world, cfg.Shell.CycleInterval(), flagMaxCycles)

	fmt.Println(level.Render(world.Level))
	fmt.Println()
	switch world.Phase {
	case game.PhaseCutscene:
		styleOK.Printf("Heart found")
	case game.PhaseRunning:
		styleError.Printf("Still running")
	default:
		styleHint.Printf("Robot stopped")
	}
	fmt.Printf(" after %d cycles (seed %d)\n", world.Cycles, world.Info.Seed)
	if world.Issue != "" {
		styleHint.Printf("last issue: %s\n", world.Issue)
	}
	if world.Phase != game.PhaseCutscene {
		os.Exit(2)
	}
}
