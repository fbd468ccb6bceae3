package reports

import (
	"net/http"

	"artmarket/internal/api/httpx"
	"artmarket/internal/domain/reports"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Reports *reports.Service
}

// GET /api/reports/artist/:artist_id
func (h *Handler) ArtistReport(c *gin.Context) {
	artistID, err := httpx.UintParam(c, "artist_id")
	if err != nil {
		httpx.WriteError(c, err)
		return
	}

	r, err := h.Reports.ArtistReport(c.Request.Context(), httpx.PrincipalFrom(c), artistID)
	if err != nil {
		httpx.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
