package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/platform/tui"
	"github.com/vovakirdan/robojobs/internal/registry"
)

var (
	flagMazeWidth  int
	flagMazeHeight int
	flagMazeCheck  bool
	flagMazePlain  bool
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Generate and print a level",
	Long: `Generate a level with the configured generator and print it.

With --check, also verify that the heart can be reached from the hero
and exit non-zero if it cannot.

Examples:
  robojobs maze
  robojobs maze --width 3 --height 2 --seed 42
  robojobs maze --generator simple --plain`,
	Args: cobra.NoArgs,
	Run:  runMaze,
}

func init() {
	mazeCmd.Flags().StringVar(&flagGenerator, "generator", "", "Level generator (see 'robojobs list')")
	mazeCmd.Flags().IntVar(&flagMazeWidth, "width", 0, "Rooms across (0 = config)")
	mazeCmd.Flags().IntVar(&flagMazeHeight, "height", 0, "Rooms down (0 = config)")
	mazeCmd.Flags().BoolVar(&flagMazeCheck, "check", false, "Verify the heart is reachable")
	mazeCmd.Flags().BoolVar(&flagMazePlain, "plain", false, "Print without colours")
}

func runMaze(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	id := cfg.Maze.Generator
	if flagGenerator != "" {
		id = flagGenerator
	}
	opts := registry.Options{
		Width:      cfg.Maze.Width,
		Height:     cfg.Maze.Height,
		RoomWidth:  cfg.Maze.RoomWidth,
		RoomHeight: cfg.Maze.RoomHeight,
		Seed:       seed(),
	}
	if flagMazeWidth > 0 {
		opts.Width = flagMazeWidth
	}
	if flagMazeHeight > 0 {
		opts.Height = flagMazeHeight
	}

	state, err := registry.Generate(id, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagMazePlain {
		fmt.Println(level.Render(state))
	} else {
		fmt.Println(tui.RenderScreen(level.Framed(state)))
	}
	fmt.Printf("generator %s, seed %d, %dx%d rooms\n", id, opts.Seed, opts.Width, opts.Height)

	if flagMazeCheck {
		if err := checkReachable(state); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("heart reachable")
	}
}

// checkReachable walks passable tiles from the hero to every other actor.
func checkReachable(s level.State) error {
	hero, ok := s.Hero()
	if !ok {
		return fmt.Errorf("level has no hero")
	}
	for _, a := range s.Actors {
		if a.Kind == level.Hero {
			continue
		}
		if !s.Terrain.Reachable(hero.Position.Origin(), a.Position.Origin()) {
			return fmt.Errorf("%s at %v cannot be reached", a.Kind, a.Position.Origin())
		}
	}
	return nil
}
