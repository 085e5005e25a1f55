package handlers

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/gradelens/gradelens-api/internal/dataset"
	"github.com/gradelens/gradelens-api/internal/types"
)

// Handler serves the dashboard API over the immutable dataset table.
type Handler struct {
	table     *dataset.Table
	respCache *cache.Cache
	pages     embed.FS
}

const (
	defaultLimit = 100
	maxLimit     = 500
)

type paginationParams struct {
	Limit  int
	Page   int
	Offset int
}

// New builds a handler over the loaded table. respCache holds computed
// distribution and chart responses; pages carries the embedded dashboard
// assets.
func New(table *dataset.Table, respCache *cache.Cache, pages embed.FS) *Handler {
	return &Handler{
		table:     table,
		respCache: respCache,
		pages:     pages,
	}
}

// Health responds with a simple service heartbeat.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "gradelens API is running",
		"records": h.table.Len(),
	})
}

// Dashboard serves the embedded single-page dashboard.
func (h *Handler) Dashboard(c *gin.Context) {
	page, err := h.pages.ReadFile("templates/dashboard.html")
	if err != nil {
		log.Printf("dashboard template not found: %v", err)
		c.String(http.StatusInternalServerError, "dashboard unavailable")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, string(page))
}

// canonicalField resolves a user-supplied field name to its canonical
// spelling, case-insensitively. Dropdowns constrain what the UI sends, but
// the API edge still validates.
func canonicalField(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, field := range types.CategoryFields() {
		if strings.EqualFold(field, value) {
			return field, true
		}
	}
	return "", false
}

func parsePaginationParams(c *gin.Context) (paginationParams, error) {
	limitValue := strings.TrimSpace(c.Query("limit"))
	if limitValue == "" {
		limitValue = strconv.Itoa(defaultLimit)
	}

	limit, err := strconv.Atoi(limitValue)
	if err != nil || limit <= 0 {
		return paginationParams{}, fmt.Errorf("limit parameter must be a positive integer")
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	pageValue := strings.TrimSpace(c.Query("page"))
	if pageValue == "" {
		pageValue = "1"
	}

	page, err := strconv.Atoi(pageValue)
	if err != nil || page <= 0 {
		return paginationParams{}, fmt.Errorf("page parameter must be a positive integer")
	}

	offset := (page - 1) * limit

	return paginationParams{
		Limit:  limit,
		Page:   page,
		Offset: offset,
	}, nil
}

func parsePaginationOrRespond(c *gin.Context) (paginationParams, bool) {
	params, err := parsePaginationParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return paginationParams{}, false
	}
	return params, true
}

func buildPaginationMeta(params paginationParams, itemsReturned int, hasNext bool) gin.H {
	meta := gin.H{
		"page":     params.Page,
		"limit":    params.Limit,
		"has_next": hasNext,
	}

	if hasNext {
		meta["next_page"] = params.Page + 1
	} else {
		meta["total"] = params.Offset + itemsReturned
	}

	return meta
}
