package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkuzn/isect/internal/geom"
)

var (
	flagLinesEndpoints bool
	flagLinesSave      bool
)

var linesCmd = &cobra.Command{
	Use:   "lines <x1,y1> <x2,y2> <x3,y3> <x4,y4>",
	Short: "Intersect two segments",
	Long: `Compute the crossing point of two finite line segments.

The first two arguments are the endpoints of the first segment, the last two
the endpoints of the second. Parallel and coincident segments never intersect.
By default a crossing exactly on a segment endpoint does not count; pass
--endpoints to include it.

Examples:
  isect lines 0,0 4,4 0,4 4,0
  isect lines 0,0 2,2 2,2 4,0 --endpoints
  isect lines 0,0 4,4 0,4 4,0 --save`,
	Args: cobra.ExactArgs(4),
	Run:  runLines,
}

func init() {
	linesCmd.Flags().BoolVar(&flagLinesEndpoints, "endpoints", false, "Count crossings on segment endpoints")
	linesCmd.Flags().BoolVar(&flagLinesSave, "save", false, "Record the query in history")
}

func runLines(cmd *cobra.Command, args []string) {
	pts := make([]geom.Point, 4)
	for i, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		pts[i] = p
	}

	s1 := geom.Seg(pts[0], pts[1])
	s2 := geom.Seg(pts[2], pts[3])

	p, ok := geom.Intersect(s1, s2, flagLinesEndpoints)

	var result []geom.Point
	if ok {
		result = append(result, p)
		fmt.Printf("Intersection: %s\n", p)
	} else {
		fmt.Println("No intersection.")
	}

	if flagLinesSave {
		input := fmt.Sprintf("%s-%s x %s-%s", pts[0], pts[1], pts[2], pts[3])
		saveQuery("lines", input, result)
	}
}
