package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robojobs/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List level generators",
	Long:  `Shows every level generator that can be named in the config or with --generator.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	gens := registry.List()

	if len(gens) == 0 {
		fmt.Println("No generators available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range gens {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range gens {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'robojobs play --generator <id>' to play one.")
}
