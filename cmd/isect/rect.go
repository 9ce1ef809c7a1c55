package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkuzn/isect/internal/geom"
)

var (
	flagRectEndpoints bool
	flagRectSave      bool
)

var rectCmd = &cobra.Command{
	Use:   "rect <x,y,w,h> <x1,y1> <x2,y2>",
	Short: "Intersect a rectangle boundary with a segment",
	Long: `Compute the crossing points between the boundary of an axis-aligned
rectangle and a finite line segment.

The rectangle is given as "x,y,w,h" with x,y the upper-left corner; the
height extends downward, so the lower edge sits at y-h. Points are reported
in edge order: top, bottom, left, right.

Without --endpoints, a lone touch on a rectangle vertex or on a segment
endpoint does not count as a crossing.

Examples:
  isect rect 0,0,4,4 2,1 2,-5
  isect rect 0,0,4,4 4,0 8,1 --endpoints`,
	Args: cobra.ExactArgs(3),
	Run:  runRect,
}

func init() {
	rectCmd.Flags().BoolVar(&flagRectEndpoints, "endpoints", false, "Count touches on vertices and segment endpoints")
	rectCmd.Flags().BoolVar(&flagRectSave, "save", false, "Record the query in history")
}

func runRect(cmd *cobra.Command, args []string) {
	r, err := parseRect(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, err := parsePoint(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	b, err := parsePoint(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	points := geom.IntersectRect(r, geom.Seg(a, b), flagRectEndpoints)

	if len(points) == 0 {
		fmt.Println("No intersection.")
	} else {
		fmt.Printf("%d intersection point(s):\n", len(points))
		for _, p := range points {
			fmt.Printf("  %s\n", p)
		}
	}

	if flagRectSave {
		input := fmt.Sprintf("(%g, %g, %g, %g) x %s-%s", r.X, r.Y, r.W, r.H, a, b)
		saveQuery("rect", input, points)
	}
}
