package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"anno-schema/internal/dialect"
	"anno-schema/internal/engine"
)

var cleanDrop bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove seeded data (or drop the generated tables) from the active database",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return err
		}

		db, config, err := openActiveDB()
		if err != nil {
			return err
		}
		defer db.Close()

		d := dialect.GetDialect(config.Driver)
		log.Printf("Connected to %s, using dialect: %s\n", config.Name, d.Name())

		if cleanDrop {
			// drop children before parents
			for i := len(s.Entities) - 1; i >= 0; i-- {
				table := dialect.TableName(s.Entities[i].Name)
				if _, err := db.Exec(d.DropTable(table)); err != nil {
					return fmt.Errorf("failed to drop %s: %w", table, err)
				}
				log.Printf("Dropped %s", table)
			}
			return nil
		}

		if err := engine.CleanTables(db, d, s.Entities); err != nil {
			return err
		}
		log.Println("Database Cleaned Successfully!")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().BoolVar(&cleanDrop, "drop", false, "Drop the tables instead of deleting their rows")
}
