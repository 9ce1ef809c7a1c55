// isect is a terminal toolkit for 2D segment and rectangle intersection.
//
// Usage:
//
//	isect lines <x1,y1> <x2,y2> <x3,y3> <x4,y4>  - Intersect two segments
//	isect rect <x,y,w,h> <x1,y1> <x2,y2>         - Intersect a rectangle boundary with a segment
//	isect scene <file>                           - Report all crossings in a scene file
//	isect view <file>                            - Open a scene in the TUI viewer
//	isect history                                - Show saved query history
//	isect serve                                  - Serve the viewer over SSH
//
// Global flags:
//
//	--db <path> - History database path (default: ~/.isect/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkuzn/isect/internal/geom"
	"github.com/vkuzn/isect/internal/storage"
)

var (
	// Global flags
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "isect",
	Short: "isect - Segment and rectangle intersections in your terminal",
	Long: `isect computes crossing points between finite line segments and
axis-aligned rectangle boundaries.

Points are written as "x,y" and rectangles as "x,y,w,h", where x,y is the
upper-left corner and the height extends downward.

Available commands:
  lines    - Intersect two segments
  rect     - Intersect a rectangle boundary with a segment
  scene    - Report all crossings in a YAML scene file
  view     - Open a scene in the interactive viewer
  history  - View saved query history
  serve    - Serve the viewer over SSH

Examples:
  isect lines 0,0 4,4 0,4 4,0
  isect rect 0,0,4,4 2,1 2,-5 --endpoints
  isect scene scenes/demo.yaml --save
  isect view scenes/demo.yaml
  isect serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.isect/history.db", "Path to history database")

	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(rectCmd)
	rootCmd.AddCommand(sceneCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// saveQuery records a query in the history database. Best effort: a failure
// is a warning, not an error, since the computed result was already printed.
func saveQuery(kind, input string, points []geom.Point) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveQuery(kind, input, points); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save query: %v\n", err)
	}
}
