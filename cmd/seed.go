package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"anno-schema/internal/dialect"
	"anno-schema/internal/engine"
)

var (
	seedCount    int
	seedDryRun   bool
	seedEntities []string
	seedDriver   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the active database with fake rows matching the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return err
		}
		entities, err := filterEntities(s, seedEntities)
		if err != nil {
			return err
		}

		// flag > config > default
		targetCount := viper.GetInt("settings.seed_count")
		if seedCount > 0 {
			targetCount = seedCount
		}

		// dry run: emit the INSERT script without a database
		if seedDryRun {
			driver := seedDriver
			if driver == "" {
				if config, err := GetActiveDBConfig(); err == nil {
					driver = config.Driver
				} else {
					driver = "postgres"
				}
			}
			return engine.WriteScript(os.Stdout, dialect.GetDialect(driver), entities, targetCount)
		}

		db, config, err := openActiveDB()
		if err != nil {
			return err
		}
		defer db.Close()

		d := dialect.GetDialect(config.Driver)
		log.Printf("Connected to %s, using dialect: %s\n", config.Name, d.Name())
		log.Printf("Starting seed with count=%d per entity...", targetCount)
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(targetCount * len(entities)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Seeding: "
		})

		results, err := engine.Pump(db, d, entities, targetCount, func() {
			bar.Incr()
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		verifiedResults := engine.VerifySeed(db, d, results)
		elapsed := time.Since(start)

		fmt.Println("\nSummary Report (Dependency Order):")
		total := 0
		for i, r := range verifiedResults {
			icon := "✓"
			if r.Status != "VERIFIED_OK" {
				icon = "!"
			}
			statusDisplay := r.Status
			if statusDisplay == "VERIFIED_OK" {
				statusDisplay = "OK (Verified)"
			}

			fmt.Printf("[%s] [%02d/%02d] %-20s : %d rows (Target: %d) - %s\n",
				icon, i+1, len(results), r.Table, r.Actual, r.Target, statusDisplay)
			if r.ErrorMsg != "" {
				fmt.Printf("    └ Error: %s\n", r.ErrorMsg)
			}
			total += r.Actual
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Total Rows: %d\n", total)
		log.Printf("Seed Done! Time Elapsed: %s", elapsed)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedCount, "count", 0, "Number of rows to generate per entity (overrides config)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Print the INSERT script instead of writing to the database")
	seedCmd.Flags().StringSliceVarP(&seedEntities, "entities", "e", []string{}, "Specific entities to seed (comma-separated)")
	seedCmd.Flags().StringVar(&seedDriver, "driver", "", "Dialect for --dry-run output (default: active database driver)")

	viper.BindPFlag("settings.seed_count", seedCmd.Flags().Lookup("count"))
	viper.SetDefault("settings.seed_count", 100)
}
