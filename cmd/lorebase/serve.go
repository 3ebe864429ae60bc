package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/xyian/lorebase/internal/core"
	"github.com/xyian/lorebase/internal/core/store"
	"github.com/xyian/lorebase/internal/server"
	"github.com/xyian/lorebase/internal/snapshot"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the knowledge engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st := store.New()
		st.Import(snapshot.LoadOrEmpty(cfg.Snapshot.Path))

		catalog := core.NewCatalog()
		catalog.Publish(st)

		stats := st.Stats()
		slog.Info("serving knowledge base",
			"addr", cfg.Server.Addr,
			"entities", stats.Entities,
			"relationships", stats.Relationships)

		srv := server.New(catalog)
		return srv.SetupRouter().Run(cfg.Server.Addr)
	},
}
