package handlers

import (
	"net/http"

	"pillowstat/models"
	"pillowstat/services/analytics"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Service analytics.AnalyticsService
}

func NewAnalyticsHandler(svc analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: svc}
}

type analyticsQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate"`
	Days      int    `form:"days" binding:"omitempty,gt=0"`
}

// GetAnalyticsHandler handles GET /api/analytics; the period defaults to the last 90 days.
func (h *AnalyticsHandler) GetAnalyticsHandler(c *gin.Context) {
	var q analyticsQuery
	if !bindQuery(c, &q) {
		return
	}
	report, err := h.Service.Report(c.Request.Context(), models.AnalyticsQuery{
		StartDate: parseDate(q.StartDate),
		EndDate:   parseDate(q.EndDate),
		Days:      q.Days,
	})
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, report)
}
