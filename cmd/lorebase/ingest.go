package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xyian/lorebase/internal/core/ingest"
	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/relate"
	"github.com/xyian/lorebase/internal/core/store"
	"github.com/xyian/lorebase/internal/snapshot"
)

var ingestSource string

var ingestCmd = &cobra.Command{
	Use:   "ingest <records.json>...",
	Short: "Fold source records into the snapshot",
	Long: `Reads one or more JSON files, each holding an array of source records
({"key", "category", "content"}), runs them through the usefulness filter and
normalization pipeline, re-runs relationship inference, and saves the
updated snapshot.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		source := ingestSource
		if source == "" {
			source = cfg.Ingest.DefaultSource
		}

		st := store.New()
		st.Import(snapshot.LoadOrEmpty(cfg.Snapshot.Path))

		pipeline := ingest.New(st, source)
		var total ingest.Result
		for _, path := range args {
			records, err := readRecords(path)
			if err != nil {
				return err
			}
			res := pipeline.IngestAll(records)
			total.Ingested += res.Ingested
			total.Skipped += res.Skipped
		}

		inferred := relate.Infer(st)
		if err := snapshot.Save(cfg.Snapshot.Path, st.Export()); err != nil {
			return err
		}

		slog.Info("ingest complete",
			"ingested", total.Ingested,
			"skipped", total.Skipped,
			"relationships_added", inferred.Added,
			"snapshot", cfg.Snapshot.Path)
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestSource, "source", "", "provenance label for ingested records")
}

func readRecords(path string) ([]model.SourceRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []model.SourceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
