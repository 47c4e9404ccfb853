package handlers

import (
	"net/http"

	"pillowstat/models"
	"pillowstat/services/availability"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves /api/availability.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

type availabilityQuery struct {
	UnitID    string `form:"unitId"`
	StartDate string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate"`
}

type setAvailabilityBody struct {
	UnitID    string  `json:"unitId"`
	StartDate string  `json:"startDate" binding:"omitempty,isodate"`
	EndDate   string  `json:"endDate" binding:"omitempty,isodate"`
	Status    string  `json:"status"`
	Note      *string `json:"note"`
}

// GetAvailabilityHandler handles GET /api/availability. Without unitId every unit is returned.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	var q availabilityQuery
	if !bindQuery(c, &q) {
		return
	}
	start, end := parseDate(q.StartDate), parseDate(q.EndDate)

	var (
		out any
		err error
	)
	if q.UnitID != "" {
		out, err = h.Service.QueryUnit(q.UnitID, start, end)
	} else {
		out, err = h.Service.QueryAll(start, end)
	}
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// SetAvailabilityHandler handles POST /api/availability.
func (h *AvailabilityHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	var body setAvailabilityBody
	if !bindJSON(c, &body) {
		return
	}
	res, err := h.Service.SetRange(models.SetAvailabilityRequest{
		UnitID:    body.UnitID,
		StartDate: parseDate(body.StartDate),
		EndDate:   parseDate(body.EndDate),
		Status:    models.AvailabilityStatus(body.Status),
		Note:      body.Note,
	})
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	logger.Info("Availability updated",
		zap.String("unitId", res.UnitID),
		zap.String("status", string(res.Status)),
		zap.Int("days", len(res.UpdatedDates)))
	c.JSON(http.StatusOK, res)
}

// ReconcileHandler handles POST /api/availability/reconcile.
func (h *AvailabilityHandler) ReconcileHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Reconcile())
}
