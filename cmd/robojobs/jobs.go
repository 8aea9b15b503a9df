package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robojobs/internal/library"
	"github.com/vovakirdan/robojobs/internal/storage"
)

var (
	flagExport string
	flagImport string
	flagDelete string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List, export or import saved jobs",
	Long: `Work with the jobs saved in the database given by --db.

Without flags, lists the saved jobs. Export to .yaml writes a compiled
library and needs every job to build; any other name gets plain text.

Examples:
  robojobs jobs --db ~/.robojobs/jobs.db
  robojobs jobs --db ~/.robojobs/jobs.db --export backup.yaml
  robojobs jobs --db ~/.robojobs/jobs.db --import myjobs.txt
  robojobs jobs --db ~/.robojobs/jobs.db --delete walk`,
	Args: cobra.NoArgs,
	Run:  runJobs,
}

func init() {
	jobsCmd.Flags().StringVar(&flagExport, "export", "", "Write jobs to a .yaml library or a text file")
	jobsCmd.Flags().StringVar(&flagImport, "import", "", "Read jobs from a .yaml library or a text file")
	jobsCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete the named job")
}

func runJobs(cmd *cobra.Command, args []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Note: no --db given, the in-memory database starts empty.")
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening job database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagImport != "":
		err = importJobs(store, flagImport)
	case flagExport != "":
		err = exportJobs(store, flagExport)
	case flagDelete != "":
		err = store.DeleteJob(flagDelete)
	default:
		err = listJobs(store)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listJobs(store *storage.Store) error {
	jobs, err := store.Jobs()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("No saved jobs.")
		return nil
	}

	for _, j := range jobs {
		lines := strings.Count(strings.TrimRight(j.Source, "\n"), "\n") + 1
		styleName.Printf("%-16s", j.Name)
		fmt.Printf("  %3d lines  %s\n", lines, j.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func importJobs(store *storage.Store, path string) error {
	sources, err := readJobFile(path)
	if err != nil {
		return err
	}
	for _, src := range sources {
		if err := store.SaveJob(src.Name, src.Text); err != nil {
			return err
		}
	}
	fmt.Printf("Imported %d jobs.\n", len(sources))
	return nil
}

func exportJobs(store *storage.Store, path string) error {
	saved, err := store.Jobs()
	if err != nil {
		return err
	}

	sources := make([]library.Source, len(saved))
	for i, j := range saved {
		sources[i] = library.Source{Name: j.Name, Text: j.Source}
	}

	var data []byte
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if data, err = compiledLibrary(sources); err != nil {
			return err
		}
	} else {
		data = []byte(library.JoinText(sources))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	fmt.Printf("Exported %d jobs to %s.\n", len(sources), path)
	return nil
}

// compiledLibrary builds the sources and encodes them. Every job must
// build, since the library cannot hold calls to missing jobs.
func compiledLibrary(sources []library.Source) ([]byte, error) {
	jobs, errs := compileSources(sources)
	if len(errs) > 0 {
		for name, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, e.Message)
		}
		return nil, fmt.Errorf("%d jobs do not build, export to a text file instead", len(errs))
	}
	return library.Marshal(jobs)
}
