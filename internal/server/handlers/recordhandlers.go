package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradelens/gradelens-api/internal/types"
)

// GetRecords lists cleaned records with pagination, for inspecting what the
// dashboard is actually aggregating.
func (h *Handler) GetRecords(c *gin.Context) {
	params, ok := parsePaginationOrRespond(c)
	if !ok {
		return
	}

	rows := h.table.Rows()
	if params.Offset >= len(rows) {
		c.JSON(http.StatusOK, gin.H{
			"count":      0,
			"records":    []types.Record{},
			"pagination": buildPaginationMeta(params, 0, false),
		})
		return
	}

	end := params.Offset + params.Limit
	hasNext := end < len(rows)
	if end > len(rows) {
		end = len(rows)
	}

	page := rows[params.Offset:end]

	c.JSON(http.StatusOK, gin.H{
		"count":      len(page),
		"records":    page,
		"pagination": buildPaginationMeta(params, len(page), hasNext),
	})
}

// GetStats reports dataset size, per-field cardinality, and the load-time
// drop accounting, so discarded rows are visible rather than silent.
func (h *Handler) GetStats(c *gin.Context) {
	cardinality := gin.H{}
	for _, field := range types.CategoryFields() {
		cardinality[field] = h.table.DistinctCount(field)
	}

	c.JSON(http.StatusOK, gin.H{
		"records":     h.table.Len(),
		"load":        h.table.Stats(),
		"cardinality": cardinality,
	})
}
