package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanlogix/tripdesk/core/model"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
data:
  csv_path: /data/traffic.csv
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/traffic.csv", cfg.Data.CSVPath)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 220, cfg.Model.Trees)
	assert.Equal(t, int64(42), cfg.Model.Seed)
	assert.Equal(t, 3, cfg.Routing.TimeoutSeconds)
	assert.Equal(t, ":9091", cfg.Metrics.PrometheusAddr)
	assert.Empty(t, cfg.Routing.BaseURL, "remote routing stays off unless configured")
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
data:
  csv_path: /data/traffic.csv
server:
  addr: ":9000"
model:
  trees: 50
  seed: 7
routing:
  base_url: http://osrm.local
  timeout_seconds: 5
pricing:
  per_km:
    LCV: 45
  surcharge:
    express: 1.3
rules:
  - name: Test curfew
    areas: [Hebbal]
    vehicle_types: [HCV]
    start_hour: 8
    end_hour: 20
    recommendation: wait it out
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 50, cfg.Model.Trees)
	assert.Equal(t, int64(7), cfg.Model.Seed)
	assert.Equal(t, 12, cfg.Model.MaxDepth, "unset model fields keep defaults")
	assert.Equal(t, "http://osrm.local", cfg.Routing.BaseURL)
	assert.Equal(t, 5, cfg.Routing.TimeoutSeconds)

	rates := cfg.Pricing.RateTable()
	assert.Equal(t, 45.0, rates.PerKm[model.VehicleLCV])
	assert.Equal(t, 28.0, rates.PerKm[model.VehicleMini], "untouched classes keep defaults")
	assert.Equal(t, 1.3, rates.Surcharge[model.PriorityExpress])

	set := cfg.RuleSet()
	require.Len(t, set, 1)
	assert.Equal(t, "Test curfew", set[0].Name)
	assert.Equal(t, []model.VehicleType{model.VehicleHCV}, set[0].RestrictedVehicleTypes)
	assert.Equal(t, 20, set[0].EndHour)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TD_SERVER__ADDR", ":7070")
	path := writeConfig(t, "config.yaml", `
data:
  csv_path: /data/traffic.csv
server:
  addr: ":9000"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing csv path", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", "server:\n  addr: \":9000\"\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
	t.Run("unsupported format", func(t *testing.T) {
		path := writeConfig(t, "config.toml", "x = 1\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
	t.Run("bad model settings", func(t *testing.T) {
		path := writeConfig(t, "config.yaml", `
data:
  csv_path: /data/traffic.csv
model:
  holdout: 2.0
`)
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestRuleSet_DefaultsToBengaluru(t *testing.T) {
	var cfg Config
	set := cfg.RuleSet()
	require.NotEmpty(t, set)
	assert.Equal(t, "CBD heavy vehicle curfew", set[0].Name)
}
