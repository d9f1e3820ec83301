package api

import (
	"net/http"

	"alcyxob/scalar-app/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static catalog entities for form widgets and
// admin displays. Everything here is read-only.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) GetDomains(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Domains())
}

func (h *CatalogHandler) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Events())
}

func (h *CatalogHandler) GetUnitTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.UnitTypes())
}

func (h *CatalogHandler) GetGenders(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Genders())
}

func (h *CatalogHandler) GetAgeGroups(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.AgeGroups())
}

func (h *CatalogHandler) GetCohorts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Cohorts())
}
