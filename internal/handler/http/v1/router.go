package v1

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shenikar/safe_route_system/internal/config"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/", h.root)

	// Сообщения об инцидентах
	incidents := api.Group("/incidents")
	{
		report := []gin.HandlerFunc{}
		if h.reportLimiter != nil {
			report = append(report, RateLimitMiddleware(h.reportLimiter, h.logger))
		}
		incidents.POST("", append(report, h.createIncident)...)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.DELETE("/:id", APIKeyAuthMiddleware(h.cfg, h.logger), h.deleteIncident)
	}

	api.GET("/tollgates", h.listTollGates)

	// Расчет маршрутов
	routes := api.Group("/routes")
	{
		routes.POST("/calculate", h.calculateRoute)
		routes.POST("/calculate/geojson", h.calculateRouteGeoJSON)
	}

	api.GET("/emergency-contacts", h.emergencyContacts)
	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// CORSMiddleware разрешает запросы с фронтенда согласно CORS_ORIGINS
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-API-Key")

	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	return cors.New(corsCfg)
}
