package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"anno-schema/internal/formatter"
	"anno-schema/internal/schema"
)

var (
	scanFormat   string
	scanOutput   string
	scanEntities []string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract the schema and print a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return err
		}

		entities, err := filterEntities(s, scanEntities)
		if err != nil {
			return err
		}
		report := &schema.Schema{Entities: entities, References: s.References}

		var writer = os.Stdout
		if scanOutput != "" {
			f, err := os.Create(scanOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			writer = f
		}

		switch scanFormat {
		case "text":
			return formatter.NewTextFormatter(writer).Format(report)
		case "markdown":
			return formatter.NewMarkdownFormatter(writer).Format(report)
		default:
			return fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", scanFormat)
		}
	},
}

func init() {
	RootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "text", "Output format: text or markdown")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "Output file (default: stdout)")
	scanCmd.Flags().StringSliceVarP(&scanEntities, "entities", "e", []string{}, "Specific entities to report (comma-separated)")
}
