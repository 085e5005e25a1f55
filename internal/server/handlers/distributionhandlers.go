package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/gradelens/gradelens-api/internal/aggregate"
	"github.com/gradelens/gradelens-api/internal/chart"
	"github.com/gradelens/gradelens-api/internal/types"
)

// selections resolves the primary/secondary query parameters. A missing
// primary is a client error; a secondary equal to the primary collapses to
// the unfaceted view.
func (h *Handler) selections(c *gin.Context) (primary, secondary string, ok bool) {
	rawPrimary := c.Query("primary")
	if rawPrimary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "primary parameter is required"})
		return "", "", false
	}

	primary, found := canonicalField(rawPrimary)
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category field"})
		return "", "", false
	}

	if rawSecondary := c.Query("secondary"); rawSecondary != "" {
		secondary, found = canonicalField(rawSecondary)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category field"})
			return "", "", false
		}
		if secondary == primary {
			secondary = ""
		}
	}

	return primary, secondary, true
}

// GetDistribution computes the grade distribution grouped by the primary
// and optional secondary category. The table never changes after load, so
// responses are cached per selection pair.
func (h *Handler) GetDistribution(c *gin.Context) {
	primary, secondary, ok := h.selections(c)
	if !ok {
		return
	}

	rows, err := h.distribution(primary, secondary)
	if err != nil {
		respondAggregateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"primary":      primary,
		"secondary":    secondary,
		"count":        len(rows),
		"distribution": rows,
	})
}

// GetChart computes the distribution and wraps it in a renderable chart
// spec, including the facet height policy.
func (h *Handler) GetChart(c *gin.Context) {
	primary, secondary, ok := h.selections(c)
	if !ok {
		return
	}

	cacheKey := "chart|" + primary + "|" + secondary
	if cached, found := h.respCache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached.(types.ChartSpec))
		return
	}

	rows, err := h.distribution(primary, secondary)
	if err != nil {
		respondAggregateError(c, err)
		return
	}

	distinct := 0
	if secondary != "" {
		distinct = h.table.DistinctCount(secondary)
	}

	spec := chart.Build(rows, primary, secondary, distinct)
	h.respCache.Set(cacheKey, spec, cache.DefaultExpiration)

	c.JSON(http.StatusOK, spec)
}

func (h *Handler) distribution(primary, secondary string) ([]types.DistributionRow, error) {
	cacheKey := "dist|" + primary + "|" + secondary
	if cached, found := h.respCache.Get(cacheKey); found {
		return cached.([]types.DistributionRow), nil
	}

	rows, err := aggregate.Distribution(h.table, primary, secondary)
	if err != nil {
		return nil, err
	}

	h.respCache.Set(cacheKey, rows, cache.DefaultExpiration)
	return rows, nil
}

func respondAggregateError(c *gin.Context, err error) {
	if errors.Is(err, aggregate.ErrNoPrimary) || errors.Is(err, aggregate.ErrUnknownField) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute distribution"})
}
