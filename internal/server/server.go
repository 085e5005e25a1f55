package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/gradelens/gradelens-api/internal/config"
	"github.com/gradelens/gradelens-api/internal/dataset"
	"github.com/gradelens/gradelens-api/internal/server/handlers"
	"github.com/gradelens/gradelens-api/internal/server/middleware"
	"github.com/gradelens/gradelens-api/internal/server/ratelimit"
	"github.com/gradelens/gradelens-api/internal/server/router"
	"github.com/gradelens/gradelens-api/web"
)

const (
	responseCacheTTL     = 5 * time.Minute
	responseCacheCleanup = 10 * time.Minute
)

// NewServer loads the dataset and assembles the HTTP server. The table is
// built once here and shared read-only by every request.
func NewServer(cfg config.Config) *http.Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	table, err := dataset.Load(cfg.DataFile)
	if err != nil {
		log.Fatalf("error loading dataset %s: %v\n", cfg.DataFile, err)
	}

	stats := table.Stats()
	log.Printf("loaded %s: %d rows read, %d kept, %d dropped for missing values, %d dropped for invalid grades",
		cfg.DataFile, stats.RowsRead, stats.RowsKept, stats.DroppedMissing, stats.DroppedBadGrade)

	handler := handlers.New(
		table,
		cache.New(responseCacheTTL, responseCacheCleanup),
		web.Pages,
	)
	mw := middleware.NewManager(ratelimit.NewLimiter(cfg.RateLimit, cfg.WindowSeconds))

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router.New(handler, mw),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
