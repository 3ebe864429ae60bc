package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/xyian/lorebase/internal/core/merge"
	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/relate"
	"github.com/xyian/lorebase/internal/core/store"
	"github.com/xyian/lorebase/internal/snapshot"
)

var (
	mergeCategory string
	mergeBuilds   string
)

var mergeCmd = &cobra.Command{
	Use:   "merge <table.csv>...",
	Short: "Merge source tables into the snapshot",
	Long: `Reads CSV tables exported from community sources, merges rows that
describe the same item across sources (summing mentions, keeping the most
detailed context, and unioning sources), and applies the result to the
snapshot under the given category. Gear set tables are grouped by set with
per-piece mention counts. Optionally applies a curated builds file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st := store.New()
		st.Import(snapshot.LoadOrEmpty(cfg.Snapshot.Path))

		var rows []model.TableRow
		for _, path := range args {
			tableRows, err := merge.ReadTableFile(path)
			if err != nil {
				return err
			}
			rows = append(rows, tableRows...)
		}

		var entries []model.MergedEntry
		if mergeCategory == "gear_sets" {
			entries = merge.GearSets(rows)
		} else {
			entries = merge.Tables(rows)
		}
		merge.Apply(st, mergeCategory, entries)

		buildsPath := mergeBuilds
		if buildsPath == "" {
			buildsPath = cfg.Builds.Path
		}
		if buildsPath != "" {
			builds, err := merge.LoadBuilds(buildsPath)
			if err != nil {
				return err
			}
			merge.ApplyBuilds(st, builds)
			slog.Info("applied curated builds", "count", len(builds), "path", buildsPath)
		}

		inferred := relate.Infer(st)
		if err := snapshot.Save(cfg.Snapshot.Path, st.Export()); err != nil {
			return err
		}

		slog.Info("merge complete",
			"category", mergeCategory,
			"rows", len(rows),
			"entries", len(entries),
			"relationships_added", inferred.Added,
			"snapshot", cfg.Snapshot.Path)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVar(&mergeCategory, "category", "weapons", "category the tables describe")
	mergeCmd.Flags().StringVar(&mergeBuilds, "builds", "", "path to a curated builds TOML file")
}
