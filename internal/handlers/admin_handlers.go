package handlers

import (
	"net/http"

	"github.com/epeers/holdings/internal/cache"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AdminHandler handles admin endpoints
type AdminHandler struct {
	memCache *cache.MemoryCache
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(memCache *cache.MemoryCache) *AdminHandler {
	return &AdminHandler{
		memCache: memCache,
	}
}

// Reload handles POST /admin/reload
// @Summary Drop cached source data
// @Description Clear every parsed table and price series; the next request re-reads the files
// @Tags admin
// @Produce json
// @Success 200 {object} models.CacheStats
// @Router /admin/reload [post]
func (h *AdminHandler) Reload(c *gin.Context) {
	before := h.memCache.Stats()
	h.memCache.Clear()
	log.Infof("cache cleared (%d series, %d tables dropped)", before.Series, before.Tables)

	c.JSON(http.StatusOK, h.memCache.Stats())
}

// CacheStats handles GET /admin/cache
// @Summary Cache content
// @Tags admin
// @Produce json
// @Success 200 {object} models.CacheStats
// @Router /admin/cache [get]
func (h *AdminHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.memCache.Stats())
}
