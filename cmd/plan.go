package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urbanlogix/tripdesk/app"
	"github.com/urbanlogix/tripdesk/config"
	"github.com/urbanlogix/tripdesk/core/model"
	"github.com/urbanlogix/tripdesk/core/trip"
)

var planFlags struct {
	startArea   string
	startRoad   string
	destArea    string
	destRoad    string
	vehicleType string
	payloadTons float64
	priority    string
	hour        int
	day         int
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compose a single trip decision and print it as JSON",
	RunE:  planTrip,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planFlags.startArea, "start-area", "", "start area name")
	f.StringVar(&planFlags.startRoad, "start-road", "", "start road/intersection")
	f.StringVar(&planFlags.destArea, "dest-area", "", "destination area name")
	f.StringVar(&planFlags.destRoad, "dest-road", "", "destination road/intersection")
	f.StringVar(&planFlags.vehicleType, "vehicle", "", "vehicle class (Mini, LCV, MHCV, HCV); empty suggests from payload")
	f.Float64Var(&planFlags.payloadTons, "payload", 3.5, "payload in tons")
	f.StringVar(&planFlags.priority, "priority", "standard", "priority tier (standard, express, night)")
	f.IntVar(&planFlags.hour, "hour", 9, "planned departure hour (0-23)")
	f.IntVar(&planFlags.day, "day", 0, "day of week (0=Monday ... 6=Sunday)")
	for _, required := range []string{"start-area", "start-road", "dest-area", "dest-road"} {
		_ = planCmd.MarkFlagRequired(required)
	}
	rootCmd.AddCommand(planCmd)
}

func planTrip(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}

	result, err := svc.Composer.Plan(context.Background(), trip.PlanRequest{
		StartArea:   planFlags.startArea,
		StartRoad:   planFlags.startRoad,
		DestArea:    planFlags.destArea,
		DestRoad:    planFlags.destRoad,
		VehicleType: model.VehicleType(planFlags.vehicleType),
		PayloadTons: planFlags.payloadTons,
		Priority:    model.PriorityTier(planFlags.priority),
		PlannedHour: planFlags.hour,
		DayOfWeek:   planFlags.day,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result.Trip)
}
