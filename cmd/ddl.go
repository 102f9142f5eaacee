package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"anno-schema/internal/dialect"
)

var (
	ddlDriver string
	ddlOutput string
	ddlApply  bool
	ddlDrop   bool
)

var ddlCmd = &cobra.Command{
	Use:   "ddl",
	Short: "Generate CREATE TABLE statements for the extracted schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return err
		}

		driver := ddlDriver
		if driver == "" {
			// fall back to the active database's driver, then postgres
			if config, err := GetActiveDBConfig(); err == nil {
				driver = config.Driver
			} else {
				driver = "postgres"
			}
		}
		d := dialect.GetDialect(driver)

		var statements []string
		if ddlDrop {
			// drop children before parents
			for i := len(s.Entities) - 1; i >= 0; i-- {
				statements = append(statements, d.DropTable(dialect.TableName(s.Entities[i].Name)))
			}
		}
		for _, e := range s.Entities {
			statements = append(statements, d.CreateTable(e))
		}

		if ddlApply {
			db, config, err := openActiveDB()
			if err != nil {
				return err
			}
			defer db.Close()
			log.Printf("Applying DDL to %s (%s)\n", config.Name, config.Driver)

			for _, stmt := range statements {
				if _, err := db.Exec(stmt); err != nil {
					return fmt.Errorf("failed to apply statement %q: %w", firstLine(stmt), err)
				}
			}
			log.Printf("Applied %d statements", len(statements))
			return nil
		}

		var writer = os.Stdout
		if ddlOutput != "" {
			f, err := os.Create(ddlOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			writer = f
		}
		for _, stmt := range statements {
			if _, err := fmt.Fprintf(writer, "%s;\n\n", stmt); err != nil {
				return err
			}
		}
		return nil
	},
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx] + " ..."
	}
	return s
}

func init() {
	RootCmd.AddCommand(ddlCmd)

	ddlCmd.Flags().StringVar(&ddlDriver, "driver", "", "Target dialect: postgres, mysql, sqlserver, oracle, sqlite (default: active database driver)")
	ddlCmd.Flags().StringVarP(&ddlOutput, "output", "o", "", "Output file (default: stdout)")
	ddlCmd.Flags().BoolVar(&ddlApply, "apply", false, "Execute the DDL against the active configured database")
	ddlCmd.Flags().BoolVar(&ddlDrop, "drop", false, "Emit DROP TABLE statements first")
}
