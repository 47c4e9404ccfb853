package handlers

import (
	"net/http"

	"pillowstat/models"
	"pillowstat/services/inquiry"
	"pillowstat/utils"

	"github.com/gin-gonic/gin"
)

// InquiryHandler serves /api/inquiries.
type InquiryHandler struct {
	Service inquiry.InquiryService
}

func NewInquiryHandler(svc inquiry.InquiryService) *InquiryHandler {
	return &InquiryHandler{Service: svc}
}

type createInquiryBody struct {
	UnitID         string `json:"unitId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ContractLength int    `json:"contractLength"`
	StartDate      string `json:"startDate" binding:"omitempty,isodate"`
	Employer       string `json:"employer"`
	Hospital       string `json:"hospital"`
	Message        string `json:"message"`
}

type updateInquiryBody struct {
	Status *string `json:"status" binding:"omitempty,inquirystatus"`
	Notes  *string `json:"notes"`
}

func (h *InquiryHandler) ListInquiriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List())
}

func (h *InquiryHandler) CreateInquiryHandler(c *gin.Context) {
	var body createInquiryBody
	if !bindJSON(c, &body) {
		return
	}
	inq, err := h.Service.Create(models.CreateInquiryRequest{
		UnitID:         body.UnitID,
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Email:          body.Email,
		Phone:          body.Phone,
		ContractLength: body.ContractLength,
		StartDate:      parseDate(body.StartDate),
		Employer:       body.Employer,
		Hospital:       body.Hospital,
		Message:        body.Message,
	})
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusCreated, inq)
}

func (h *InquiryHandler) UpdateInquiryHandler(c *gin.Context) {
	var body updateInquiryBody
	if !bindJSON(c, &body) {
		return
	}
	req := models.UpdateInquiryRequest{Notes: body.Notes}
	if body.Status != nil {
		st := models.InquiryStatus(*body.Status)
		req.Status = &st
	}
	inq, err := h.Service.Update(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, inq)
}
