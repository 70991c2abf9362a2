package routing

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

// ToFeatureCollection представляет оба пути маршрута как GeoJSON LineString
func ToFeatureCollection(result *models.RouteResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	detour := geojson.NewFeature(toLineString(result.DetourPath))
	detour.Properties["kind"] = ModeDetour.String()
	detour.Properties["safety_score"] = result.SafetyScore
	detour.Properties["incident_count"] = result.IncidentCount
	detour.Properties["toll_count"] = result.TollCount
	fc.Append(detour)

	direct := geojson.NewFeature(toLineString(result.DirectPath))
	direct.Properties["kind"] = ModeDirect.String()
	direct.Properties["distance_km"] = result.DistanceKm
	direct.Properties["estimated_time_min"] = result.EstimatedMinutes
	fc.Append(direct)

	return fc
}

// GeoJSON хранит точки в порядке (lng, lat)
func toLineString(path []geo.Coordinate) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, c := range path {
		ls[i] = orb.Point{c.Lng, c.Lat}
	}
	return ls
}
