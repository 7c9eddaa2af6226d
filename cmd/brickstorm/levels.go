package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmatyush/brickstorm/internal/level"
)

// installCustomLevels appends levels from --levels-dir to the campaign.
func installCustomLevels() {
	if flagLevelsDir == "" {
		return
	}
	loaded, err := level.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load levels from %s: %v\n", flagLevelsDir, err)
		return
	}
	level.Install(loaded)
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in campaign levels",
	Long:  `Shows every built-in level with its brick count.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	installCustomLevels()
	levels := level.Campaign()

	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxNameLen, "Name", "Bricks")
	fmt.Printf("  %-3s  %-*s  %s\n", "---", maxNameLen, "----", "------")

	for i, l := range levels {
		fmt.Printf("  %-3d  %-*s  %d\n", i+1, maxNameLen, l.Name, l.CountBricks())
	}

	fmt.Println()
	fmt.Println("Run 'brickstorm play --level <n>' to start at a specific level.")
}
