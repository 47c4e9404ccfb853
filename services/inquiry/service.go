package inquiry

import (
	"strings"
	"time"

	recordsRepo "pillowstat/database/repository/records"
	"pillowstat/models"
	"pillowstat/services/units"
	"pillowstat/utils"

	"go.uber.org/zap"
)

type InquiryService interface {
	Create(req models.CreateInquiryRequest) (*models.Inquiry, error)
	List() []models.Inquiry
	Update(id string, req models.UpdateInquiryRequest) (*models.Inquiry, error)
}

type DefaultInquiryService struct {
	Repo    recordsRepo.RecordStore[models.Inquiry]
	Catalog units.Catalog
	Logger  *zap.Logger
	Now     func() time.Time
}

func NewInquiryService(repo recordsRepo.RecordStore[models.Inquiry], catalog units.Catalog, logger *zap.Logger) *DefaultInquiryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultInquiryService{Repo: repo, Catalog: catalog, Logger: logger, Now: time.Now}
}

// Create files a public-site inquiry as new. The unit name is copied from the catalog.
func (s *DefaultInquiryService) Create(req models.CreateInquiryRequest) (*models.Inquiry, error) {
	unit, ok := s.Catalog.Get(req.UnitID)
	if !ok {
		return nil, utils.NewInvalidInput("unitId", "Invalid unit")
	}
	created, err := s.Repo.Create(models.Inquiry{
		ID:             utils.NewID(utils.InquiryIDPrefix),
		UnitID:         unit.ID,
		UnitName:       unit.Name,
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		ContractLength: req.ContractLength,
		StartDate:      req.StartDate,
		Employer:       strings.TrimSpace(req.Employer),
		Hospital:       strings.TrimSpace(req.Hospital),
		Message:        strings.TrimSpace(req.Message),
		Status:         models.InquiryNew,
		CreatedAt:      s.Now(),
	})
	if err != nil {
		s.Logger.Error("Failed to store inquiry", zap.Error(err))
		return nil, utils.NewInternal("Failed to create inquiry", err)
	}
	s.Logger.Info("Inquiry received", zap.String("inquiryId", created.ID), zap.String("unitId", created.UnitID))
	return &created, nil
}

func (s *DefaultInquiryService) List() []models.Inquiry {
	return s.Repo.GetAll()
}

func (s *DefaultInquiryService) Update(id string, req models.UpdateInquiryRequest) (*models.Inquiry, error) {
	if id == "" {
		return nil, utils.NewInvalidInput("id", "ID is required")
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, utils.NewInvalidInput("status", "Invalid status. Must be one of: new, contacted, approved, booked, declined")
	}
	updated, err := s.Repo.Update(id, func(i *models.Inquiry) {
		if req.Status != nil {
			i.Status = *req.Status
		}
		if req.Notes != nil {
			i.Notes = *req.Notes
		}
	})
	if err != nil {
		return nil, utils.NewNotFound("Inquiry not found")
	}
	s.Logger.Info("Inquiry updated", zap.String("inquiryId", id), zap.String("status", string(updated.Status)))
	return &updated, nil
}
