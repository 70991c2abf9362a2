package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/routing"
)

// @Summary Calculate safest and shortest routes
// @Description Builds a detour route around severe incidents and a direct route, and scores the detour.
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body RouteRequest true "Route endpoints"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} map[string]string "Invalid request body or coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /routes/calculate [post]
func (h *Handler) calculateRoute(c *gin.Context) {
	result, ok := h.computeRoute(c, "calculateRoute")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ModelToRouteResponse(result))
}

// @Summary Calculate routes as GeoJSON
// @Description Same as /routes/calculate, rendered as a GeoJSON FeatureCollection with two LineStrings.
// @Tags Routes
// @Accept json
// @Produce json
// @Param route body RouteRequest true "Route endpoints"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Invalid request body or coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /routes/calculate/geojson [post]
func (h *Handler) calculateRouteGeoJSON(c *gin.Context) {
	result, ok := h.computeRoute(c, "calculateRouteGeoJSON")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, routing.ToFeatureCollection(result))
}

func (h *Handler) computeRoute(c *gin.Context, method string) (*models.RouteResult, bool) {
	var input RouteRequest
	log := h.logger.WithField("method", method)

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	start := geo.Coordinate{Lat: *input.StartLat, Lng: *input.StartLng}
	end := geo.Coordinate{Lat: *input.EndLat, Lng: *input.EndLng}

	result, err := h.routeService.CalculateRoute(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, log, err)
		return nil, false
	}
	return result, true
}
