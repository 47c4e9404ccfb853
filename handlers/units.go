package handlers

import (
	"net/http"

	"pillowstat/services/units"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
)

// UnitHandler serves the read-only catalog under /api/units.
type UnitHandler struct {
	Catalog units.Catalog
}

func NewUnitHandler(catalog units.Catalog) *UnitHandler {
	return &UnitHandler{Catalog: catalog}
}

type quoteQuery struct {
	Weeks int `form:"weeks" binding:"required"`
}

func (h *UnitHandler) ListUnitsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"units":           h.Catalog.List(),
		"contractLengths": h.Catalog.ContractLengths(),
	})
}

func (h *UnitHandler) GetUnitHandler(c *gin.Context) {
	u, ok := h.Catalog.Get(c.Param("id"))
	if !ok {
		utils.RespondError(c, getLogger(c), utils.NewNotFound("Unit not found"))
		return
	}
	c.JSON(http.StatusOK, u)
}

// QuoteHandler handles GET /api/units/:id/quote?weeks=N.
func (h *UnitHandler) QuoteHandler(c *gin.Context) {
	var q quoteQuery
	if !bindQuery(c, &q) {
		return
	}
	quote, err := h.Catalog.Quote(c.Param("id"), q.Weeks)
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
