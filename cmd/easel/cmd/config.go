package cmd

import (
	"fmt"
	"os"

	"github.com/go-easel/easel/cmd/easel/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration the demo will run with: the values from
easel.yaml in the current directory merged over the built-in defaults.`,
		Usage: "easel config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	fmt.Printf("root:                %s\n", resolved.Root)
	fmt.Printf("version:             %s\n", resolved.Version)
	fmt.Printf("buffer time:         %s\n", resolved.Gestures.BufferTime)
	fmt.Printf("double-click window: %s\n", resolved.Gestures.DoubleClickWindow)
	fmt.Printf("max click drift:     %.1f cells\n", resolved.Gestures.MaxClickDrift())
	fmt.Printf("demo boxes:          %d\n", resolved.Boxes)
	return nil
}
