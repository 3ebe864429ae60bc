package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xyian/lorebase/internal/core/store"
	"github.com/xyian/lorebase/internal/snapshot"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print snapshot statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st := store.New()
		st.Import(snapshot.LoadOrEmpty(cfg.Snapshot.Path))

		out, err := json.MarshalIndent(st.Stats(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
