// Package histdata loads the historical traffic corpus from disk.
package histdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/urbanlogix/tripdesk/core/model"
)

// Dataset header columns. The loader is positional-by-name: it locates each
// column from the header row, so column order in the file does not matter.
var requiredColumns = []string{
	"Date",
	model.FeatArea,
	model.FeatRoad,
	model.FeatVolume,
	model.FeatSpeed,
	"Travel Time Index",
	"Congestion Level",
	model.FeatCapacity,
	model.FeatIncidents,
	model.FeatEnvironment,
	model.FeatTransitUsage,
	model.FeatSignalCompliance,
	model.FeatParking,
	model.FeatPedestrians,
	model.FeatWeather,
	model.FeatRoadwork,
}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "2006/01/02", time.RFC3339}

// Load reads the traffic dataset CSV. Rows with unparseable dates are
// dropped; everything else is returned in file order, which downstream
// selection relies on as the tie-break.
func Load(path string) ([]model.CorridorSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the dataset from an open reader.
func Parse(r io.Reader) ([]model.CorridorSnapshot, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", name)
		}
	}

	var out []model.CorridorSnapshot
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		date, ok := parseDate(rec[col["Date"]])
		if !ok {
			continue
		}
		out = append(out, model.CorridorSnapshot{
			Area:                 rec[col[model.FeatArea]],
			Road:                 rec[col[model.FeatRoad]],
			Date:                 date,
			TrafficVolume:        num(rec, col, model.FeatVolume),
			AverageSpeed:         num(rec, col, model.FeatSpeed),
			TravelTimeIndex:      num(rec, col, "Travel Time Index"),
			CongestionLevel:      num(rec, col, "Congestion Level"),
			CapacityUtilization:  num(rec, col, model.FeatCapacity),
			IncidentReports:      num(rec, col, model.FeatIncidents),
			EnvironmentalImpact:  num(rec, col, model.FeatEnvironment),
			PublicTransportUsage: num(rec, col, model.FeatTransitUsage),
			SignalCompliance:     num(rec, col, model.FeatSignalCompliance),
			ParkingUsage:         num(rec, col, model.FeatParking),
			PedestrianCount:      num(rec, col, model.FeatPedestrians),
			Weather:              rec[col[model.FeatWeather]],
			Roadwork:             rec[col[model.FeatRoadwork]],
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("dataset contains no usable rows")
	}
	return out, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func num(rec []string, col map[string]int, name string) float64 {
	v, err := strconv.ParseFloat(rec[col[name]], 64)
	if err != nil {
		return 0
	}
	return v
}
