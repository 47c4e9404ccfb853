package handlers

import (
	"net/http"

	"pillowstat/models"
	"pillowstat/services/guest"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
)

// GuestHandler serves /api/guests.
type GuestHandler struct {
	Service guest.GuestService
}

func NewGuestHandler(svc guest.GuestService) *GuestHandler {
	return &GuestHandler{Service: svc}
}

type listGuestsQuery struct {
	Search   string `form:"search"`
	Hospital string `form:"hospital"`
	Employer string `form:"employer"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type createGuestBody struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Employer     string `json:"employer"`
	Hospital     string `json:"hospital"`
	ProfileImage string `json:"profileImage"`
}

type updateGuestBody struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Employer     *string `json:"employer"`
	Hospital     *string `json:"hospital"`
	ProfileImage *string `json:"profileImage"`
}

func (h *GuestHandler) ListGuestsHandler(c *gin.Context) {
	var q listGuestsQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, h.Service.ListGuests(models.GuestFilter{
		Search:   q.Search,
		Hospital: q.Hospital,
		Employer: q.Employer,
		Page:     q.Page,
		Limit:    q.Limit,
	}))
}

func (h *GuestHandler) GetGuestHandler(c *gin.Context) {
	view, err := h.Service.GetGuestView(c.Param("id"))
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *GuestHandler) CreateGuestHandler(c *gin.Context) {
	var body createGuestBody
	if !bindJSON(c, &body) {
		return
	}
	g, err := h.Service.CreateGuest(models.CreateGuestRequest{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		Phone:        body.Phone,
		Employer:     body.Employer,
		Hospital:     body.Hospital,
		ProfileImage: body.ProfileImage,
	})
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (h *GuestHandler) UpdateGuestHandler(c *gin.Context) {
	var body updateGuestBody
	if !bindJSON(c, &body) {
		return
	}
	g, err := h.Service.UpdateGuest(c.Param("id"), models.UpdateGuestRequest{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Email:        body.Email,
		Phone:        body.Phone,
		Employer:     body.Employer,
		Hospital:     body.Hospital,
		ProfileImage: body.ProfileImage,
	})
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, g)
}
