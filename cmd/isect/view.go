package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkuzn/isect/internal/config"
	"github.com/vkuzn/isect/internal/platform/tui"
	"github.com/vkuzn/isect/internal/scene"
)

var flagViewConfig string

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Open a scene in the interactive viewer",
	Long: `Open a YAML scene file in the terminal viewer.

Controls:
  Arrows/hjkl - Pan
  +/-         - Zoom
  e           - Toggle endpoint inclusion
  0           - Reset view
  ?           - Help
  Q/Esc       - Quit

Examples:
  isect view scenes/demo.yaml
  isect view scenes/demo.yaml --config ./my-viewer.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagViewConfig, "config", "", "Path to custom viewer config YAML")
}

func runView(cmd *cobra.Command, args []string) {
	sc, err := scene.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadViewer(flagViewConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(&sc, cfg, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
