// brickstorm is a terminal brick-breaker with living bricks.
//
// Usage:
//
//	brickstorm play           - Play (mode/level picker, then game)
//	brickstorm scores         - Show high scores and run stats
//	brickstorm levels         - List the built-in campaign levels
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.brickstorm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickstorm",
	Short: "Brickstorm - A brick-breaker with bricks that fight back",
	Long: `Brickstorm is a terminal brick-breaker where the bricks are alive:
mimics dodge your ball, healers repair their neighbors, spores grow new
bricks, turrets shoot back and portals swallow the ball whole.

Available commands:
  play     - Start a game (campaign, endless, or a specific level)
  scores   - View high scores and run statistics
  levels   - List the built-in campaign levels

Examples:
  brickstorm play
  brickstorm play --difficulty hard
  brickstorm play --endless --seed 42
  brickstorm scores
  brickstorm levels`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickstorm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with custom YAML levels (appended to the campaign)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
