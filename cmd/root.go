package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"anno-schema/internal/annotation"
	"anno-schema/internal/schema"
)

var (
	cfgFile     string
	sourcePaths []string
	sourceLang  string
)

var RootCmd = &cobra.Command{
	Use:   "anno-schema",
	Short: "Annotation-driven schema extractor",
	Long: `
anno-schema scans source files for entity classes whose fields carry
comment annotations (@pk, @unique, @notNull, @default, @ref), extracts a
relational schema from them, and generates reports, DDL and seed data.

Supported front ends: Python dataclasses, Java classes (Javadoc tags and
basic JPA annotations).
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./anno-schema.yaml)")
	RootCmd.PersistentFlags().StringSliceVarP(&sourcePaths, "source", "s", nil, "source files or directories to scan")
	RootCmd.PersistentFlags().StringVar(&sourceLang, "lang", "", "source language: auto, python, java")

	viper.BindPFlag("source.paths", RootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("source.lang", RootCmd.PersistentFlags().Lookup("lang"))

	viper.SetDefault("source.paths", []string{"."})
	viper.SetDefault("source.lang", "auto")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// executable directory first, then current directory
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		viper.AddConfigPath(".")

		viper.SetConfigName("anno-schema")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// loadSchema runs the full extraction pipeline over the configured sources.
func loadSchema() (*schema.Schema, error) {
	paths := viper.GetStringSlice("source.paths")
	if len(paths) == 0 {
		return nil, fmt.Errorf("no source paths configured (use --source or source.paths in config)")
	}
	classes, err := annotation.ScanPaths(paths, viper.GetString("source.lang"))
	if err != nil {
		return nil, err
	}
	return schema.Extract(classes)
}

// filterEntities keeps only the named entities (case-insensitive), preserving
// dependency order. Empty names means keep everything.
func filterEntities(s *schema.Schema, names []string) ([]*schema.Entity, error) {
	if len(names) == 0 {
		return s.Entities, nil
	}
	want := make(map[string]bool)
	for _, n := range names {
		want[strings.ToLower(strings.TrimSpace(n))] = true
	}
	var out []*schema.Entity
	for _, e := range s.Entities {
		if want[strings.ToLower(e.Name)] {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no matching entities found for inputs: %v", names)
	}
	return out, nil
}
