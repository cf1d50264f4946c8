package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
	"github.com/mueblessanmiguel/catalogo_api/internal/viewstate"
)

// inquiryStore is the slice of the inquiry repository the service needs.
type inquiryStore interface {
	Create(i *models.Inquiry) error
	ListAll() ([]models.Inquiry, error)
	ListByStatus(status string) ([]models.Inquiry, error)
	CountNew() (int, error)
	GetByID(id string) (*models.Inquiry, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}

// InquiryService handles contact-form submissions and their admin triage.
// Submit is the only mutation reachable without admin capability.
type InquiryService struct {
	inquiries inquiryStore
}

// NewInquiryService constructs an InquiryService.
func NewInquiryService(inquiries inquiryStore) *InquiryService {
	return &InquiryService{inquiries: inquiries}
}

// SubmitInquiryRequest is the public contact-form payload. Status is not
// settable by the caller.
type SubmitInquiryRequest struct {
	Name            string  `json:"name" binding:"required"`
	Contact         string  `json:"contact" binding:"required"`
	ProductCategory *string `json:"productCategory"`
	Message         string  `json:"message" binding:"required"`
	Source          string  `json:"source"`
}

// InquiryListResult pairs the filtered inquiries with the per-tab counts
// derived from the same source list.
type InquiryListResult struct {
	Inquiries []models.Inquiry              `json:"inquiries"`
	Counts    viewstate.InquiryStatusCounts `json:"counts"`
}

// Submit persists an anonymous contact-form submission. Every new inquiry
// starts at status "new"; the source defaults to the website channel when
// the caller omits it.
func (s *InquiryService) Submit(req *SubmitInquiryRequest) (*models.Inquiry, error) {
	source := req.Source
	if source == "" {
		source = models.DefaultInquirySource
	}

	inquiry := &models.Inquiry{
		Name:            req.Name,
		Contact:         req.Contact,
		ProductCategory: req.ProductCategory,
		Message:         req.Message,
		Source:          source,
		Status:          models.InquiryStatusNew,
	}

	if err := s.inquiries.Create(inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

// List returns inquiries for the admin triage screen. The whole list is
// fetched once; the status tab filter and the per-tab counts are both derived
// from that single list so they always agree with each other.
func (s *InquiryService) List(status string) (*InquiryListResult, error) {
	all, err := s.inquiries.ListAll()
	if err != nil {
		return nil, err
	}
	return &InquiryListResult{
		Inquiries: viewstate.FilterInquiriesByStatus(all, status),
		Counts:    viewstate.CountInquiriesByStatus(all),
	}, nil
}

// ListByStatus returns inquiries with exactly the given status, straight from
// the store.
func (s *InquiryService) ListByStatus(status string) ([]models.Inquiry, error) {
	if !models.IsValidInquiryStatus(status) {
		return nil, utils.ErrInvalidStatus
	}
	return s.inquiries.ListByStatus(status)
}

// CountNew returns the badge count of untriaged inquiries. The counter is
// non-critical: any storage failure is logged and reported as zero rather
// than propagated.
func (s *InquiryService) CountNew() int {
	count, err := s.inquiries.CountNew()
	if err != nil {
		log.Error().Err(err).Msg("Failed to count new inquiries")
		return 0
	}
	return count
}

// UpdateStatus moves an inquiry to any of the enumerated statuses. No
// transition rules apply: reviewed back to new, archived straight from new,
// all are accepted.
func (s *InquiryService) UpdateStatus(id, status string) (*models.Inquiry, error) {
	if !models.IsValidInquiryStatus(status) {
		return nil, utils.ErrInvalidStatus
	}
	if _, err := s.inquiries.GetByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	if err := s.inquiries.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.inquiries.GetByID(id)
}

// Delete permanently removes an inquiry.
func (s *InquiryService) Delete(id string) error {
	return s.inquiries.Delete(id)
}
