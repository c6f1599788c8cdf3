package cmd

import (
	"fmt"

	"github.com/kozaktomas/photo-collage/internal/config"
	"github.com/kozaktomas/photo-collage/internal/templates"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the layout templates for a photo count",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesCmd.Flags().Int("count", 0, "Photo count to enumerate templates for")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	count := mustGetInt(cmd, "count")
	if count <= 0 {
		return fmt.Errorf("--count must be a positive integer")
	}

	cfg := config.Load()
	descs := templates.Enumerate(count, templates.Params{SplitRatio: cfg.Engine.SplitRatio})

	fmt.Printf("%d templates for %d photos:\n", len(descs), count)
	for _, d := range descs {
		fmt.Printf("  %-10s %s\n", d.Kind, d.Name)
	}
	return nil
}
