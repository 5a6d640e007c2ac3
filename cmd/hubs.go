package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urbanlogix/tripdesk/config"
	"github.com/urbanlogix/tripdesk/core/hubs"
	"github.com/urbanlogix/tripdesk/infra/histdata"
)

var hubsArea string

var hubsCmd = &cobra.Command{
	Use:   "hubs",
	Short: "Rank consolidation micro-hubs for an area",
	RunE:  rankHubs,
}

func init() {
	hubsCmd.Flags().StringVar(&hubsArea, "area", "", "area to rank hubs for")
	rootCmd.AddCommand(hubsCmd)
}

func rankHubs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	snapshots, err := histdata.Load(cfg.Data.CSVPath)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	ranked := hubs.Rank(hubs.BengaluruHubs(), snapshots, hubsArea)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(ranked)
}
