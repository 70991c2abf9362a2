package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/repository"
	"github.com/shenikar/safe_route_system/internal/repository/sqlite"
	"github.com/shenikar/safe_route_system/internal/routing"
	"github.com/shenikar/safe_route_system/internal/service"
	"github.com/shenikar/safe_route_system/internal/webhook"
	"github.com/spf13/cobra"
)

// NewRouteCmd создает команду route
func NewRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Calculate safest and shortest routes against the local store",
		Long: `Route loads incidents and toll gates from the SQLite store, builds the detour
and direct paths between two points and prints the scored result as JSON.

Examples:
  safepathctl route --from 19.0760,72.8777 --to 19.1136,72.8697
  safepathctl route --from 19.0,72.8 --to 19.02,72.82 --geojson`,
		Args: cobra.NoArgs,
		RunE: runRouteCmd,
	}

	cmd.Flags().String("from", "", "Start point as LAT,LNG")
	cmd.Flags().String("to", "", "End point as LAT,LNG")
	cmd.Flags().Bool("geojson", false, "Print a GeoJSON FeatureCollection instead of the route JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runRouteCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	fromRaw, _ := cmd.Flags().GetString("from")
	toRaw, _ := cmd.Flags().GetString("to")
	asGeoJSON, _ := cmd.Flags().GetBool("geojson")

	start, err := parseCoordinate(fromRaw)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	end, err := parseCoordinate(toRaw)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	db, log, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	// Офлайн режим: без Redis, кеша и вебхуков
	cfg := &config.Config{
		AlertMinSeverity:   5,
		IncidentFetchLimit: 1000,
		TollGateFetchLimit: 1000,
	}
	incidents := service.NewIncidentService(sqlite.NewIncidentRepository(db), repository.NopIncidentCache{}, webhook.NopPublisher{}, log, cfg)
	tollGates := service.NewTollGateService(sqlite.NewTollGateRepository(db), log, cfg)
	routes := service.NewRouteService(incidents, tollGates, routing.NewAssembler(routing.DefaultDetour()), repository.NewLocalStatsCounter(), log)

	result, err := routes.CalculateRoute(ctx, start, end)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if asGeoJSON {
		return enc.Encode(routing.ToFeatureCollection(result))
	}
	return enc.Encode(result)
}

// parseCoordinate разбирает строку вида "LAT,LNG"
func parseCoordinate(raw string) (geo.Coordinate, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return geo.Coordinate{}, fmt.Errorf("expected LAT,LNG, got %q", raw)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	return geo.NewCoordinate(lat, lng)
}
