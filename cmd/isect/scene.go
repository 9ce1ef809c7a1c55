package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkuzn/isect/internal/geom"
	"github.com/vkuzn/isect/internal/scene"
	"github.com/vkuzn/isect/internal/storage"
)

var (
	flagSceneEndpoints bool
	flagSceneSave      bool
)

var sceneCmd = &cobra.Command{
	Use:   "scene <file>",
	Short: "Report all crossings in a scene file",
	Long: `Load a YAML scene file and report every crossing: each segment pair
and each rectangle against each segment.

Scene files look like:

  name: demo
  segments:
    - {x1: 0, y1: 0, x2: 4, y2: 4}
    - {label: anti, x1: 0, y1: 4, x2: 4, y2: 0}
  rects:
    - {label: box, x: 0, y: 0, w: 4, h: 4}

Examples:
  isect scene scenes/demo.yaml
  isect scene scenes/demo.yaml --endpoints --save`,
	Args: cobra.ExactArgs(1),
	Run:  runScene,
}

func init() {
	sceneCmd.Flags().BoolVar(&flagSceneEndpoints, "endpoints", false, "Count touches on vertices and segment endpoints")
	sceneCmd.Flags().BoolVar(&flagSceneSave, "save", false, "Record the query in history")
}

func runScene(cmd *cobra.Command, args []string) {
	sc, err := scene.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	crossings := sc.Crossings(flagSceneEndpoints)

	fmt.Printf("Scene %q: %d segment(s), %d rect(s)\n", sc.Name, len(sc.Segments), len(sc.Rects))
	fmt.Println()

	if len(crossings) == 0 {
		fmt.Println("No crossings.")
	} else {
		var total int
		for _, cr := range crossings {
			fmt.Printf("  %s x %s: %s\n", cr.A, cr.B, storage.FormatPoints(cr.Points))
			total += len(cr.Points)
		}
		fmt.Println()
		fmt.Printf("%d crossing point(s) in %d pair(s).\n", total, len(crossings))
	}

	if flagSceneSave {
		var all []geom.Point
		for _, cr := range crossings {
			all = append(all, cr.Points...)
		}
		saveQuery("scene", sc.Name, all)
	}
}
