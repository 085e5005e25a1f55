package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradelens/gradelens-api/internal/aggregate"
)

// GetFields lists the selectable overview categories and the default
// selection.
func (h *Handler) GetFields(c *gin.Context) {
	fields := aggregate.PrimaryOptions()

	c.JSON(http.StatusOK, gin.H{
		"count":   len(fields),
		"fields":  fields,
		"default": aggregate.DefaultPrimary,
	})
}

// GetDrilldownOptions lists the secondary categories selectable for a given
// primary field. The primary itself and the grade columns are never offered.
// The primary arrives as a query parameter because field names can contain
// slashes ("Race/Ethnicity").
func (h *Handler) GetDrilldownOptions(c *gin.Context) {
	field, ok := canonicalField(c.Query("primary"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category field"})
		return
	}

	options := aggregate.DrilldownOptions(field)

	c.JSON(http.StatusOK, gin.H{
		"field":   field,
		"count":   len(options),
		"options": options,
	})
}
