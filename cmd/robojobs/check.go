package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/robojobs/internal/config"
	"github.com/vovakirdan/robojobs/internal/game"
	"github.com/vovakirdan/robojobs/internal/library"
	"github.com/vovakirdan/robojobs/internal/robot"
	"github.com/vovakirdan/robojobs/internal/shell"
)

var (
	styleOK    = color.Style{color.FgGreen, color.OpBold}
	styleError = color.Style{color.FgRed, color.OpBold}
	styleName  = color.Style{color.FgMagenta}
	styleHint  = color.Style{color.FgGray}
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Compile a job file and report errors",
	Long: `Compile every job in a file without playing.

The file is either a YAML job library (.yaml, .yml) or plain text with a
"name:" line above each job body:

  walk:
  forward
  forward

  explore:
  look wall
  if yes right
  if no do walk
  repeat

Exits non-zero if any job fails to build.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	path := args[0]
	sources, err := readJobFile(path)
	if err != nil {
		styleError.Printf("Error: ")
		fmt.Println(err)
		os.Exit(1)
	}

	_, errs := compileSources(sources)

	slices.SortFunc(sources, func(a, b library.Source) int { return strings.Compare(a.Name, b.Name) })
	for _, src := range sources {
		if e, bad := errs[src.Name]; bad {
			styleError.Printf("✗ ")
			styleName.Printf("%s", src.Name)
			fmt.Printf(": %s\n", describe(path, src, e))
			continue
		}
		styleOK.Printf("✓ ")
		styleName.Printf("%s\n", src.Name)
	}

	if len(errs) > 0 {
		styleHint.Printf("%d of %d jobs failed\n", len(errs), len(sources))
		os.Exit(1)
	}
}

// compileSources builds every source on a fresh robot and returns the jobs
// with the errors by job name.
func compileSources(sources []library.Source) (map[string]robot.Job, map[string]*shell.CommandError) {
	r := game.NewReducer(shell.New(config.Default().Shell, nil), nil, nil)
	world, errs := r.LoadSources(game.NewWorld(), sourceMap(sources))
	return world.CPU.Jobs, errs
}

// describe places a job error in the file when the source came from text.
func describe(path string, src library.Source, e *shell.CommandError) string {
	if e.Site != shell.SiteJobBody || src.Line < 0 {
		return e.Message
	}
	return fmt.Sprintf("%s:%d: %s", path, src.Line+e.Line+1, e.Message)
}
