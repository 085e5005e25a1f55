package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradelens/gradelens-api/internal/server/handlers"
	"github.com/gradelens/gradelens-api/internal/server/middleware"
)

// New wires handlers and middleware into an HTTP router.
func New(handler *handlers.Handler, mw *middleware.Manager) http.Handler {
	router := gin.Default()

	router.GET("/health", handler.Health)
	router.GET("/", handler.Dashboard)

	v1 := router.Group("/api/v1")
	v1.Use(mw.RequestID(), mw.RateLimit())
	{
		fields := v1.Group("/fields")
		{
			fields.GET("", handler.GetFields)
			fields.GET("/drilldown", handler.GetDrilldownOptions)
		}

		v1.GET("/distribution", handler.GetDistribution)
		v1.GET("/chart", handler.GetChart)
		v1.GET("/records", handler.GetRecords)
		v1.GET("/stats", handler.GetStats)
	}

	return router
}
