package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/robojobs/internal/platform/tui"
)

var (
	flagRecordsLimit int
	flagRecordsTUI   bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show cleared levels",
	Long: `Display the most recent cleared levels saved in --db.

Examples:
  robojobs records --db ~/.robojobs/jobs.db
  robojobs records --db ~/.robojobs/jobs.db --tui`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "How many records to show")
	recordsCmd.Flags().BoolVar(&flagRecordsTUI, "tui", false, "Browse records in the terminal UI")
}

func runRecords(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening job database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecordsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRecords(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	records, err := store.Records(flagRecordsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No levels cleared yet.")
		fmt.Println()
		fmt.Println("Play 'robojobs play --db <path>' to keep a record of your wins.")
		return
	}

	fmt.Printf("  %-14s  %-7s  %-20s  %6s  %4s  %s\n", "Generator", "Size", "Seed", "Cycles", "Jobs", "Date")
	fmt.Printf("  %-14s  %-7s  %-20s  %6s  %4s  %s\n", "---------", "----", "----", "------", "----", "----")
	for _, r := range records {
		fmt.Printf("  %-14s  %-7s  %-20d  %6d  %4d  %s\n",
			r.Generator, fmt.Sprintf("%dx%d", r.Width, r.Height), r.Seed, r.Cycles, r.Jobs,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	last := records[0]
	if best, err := store.BestCycles(last.Generator, last.Width, last.Height); err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best on %s %dx%d: %d cycles\n", last.Generator, last.Width, last.Height, best)
	}
}
