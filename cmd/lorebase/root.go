package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/xyian/lorebase/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lorebase",
	Short: "Community knowledge engine for game lore",
	Long: `lorebase builds a searchable knowledge graph from community sources:
chat messages, wiki tables, and curated build guides. It serves the result
over HTTP and can mirror it into a graph database.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			slog.Warn("could not load .env file", "error", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(mirrorCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
