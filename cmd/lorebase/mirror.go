package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/xyian/lorebase/internal/driver"
	"github.com/xyian/lorebase/internal/snapshot"
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Mirror the snapshot into the graph database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.Graph.Enabled {
			return fmt.Errorf("graph mirroring is not enabled; set [graph] enabled in the config or LOREBASE_GRAPH_URI")
		}

		snap, err := snapshot.Load(cfg.Snapshot.Path)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		d, err := driver.NewMemgraphDriver(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
		if err != nil {
			return err
		}
		defer d.Close(ctx)

		if err := driver.MirrorSnapshot(ctx, d, snap); err != nil {
			return err
		}

		slog.Info("snapshot mirrored",
			"uri", cfg.Graph.URI,
			"entities", len(snap.Entities),
			"relationships", len(snap.Relationships))
		return nil
	},
}
