// Package service implements domain logic on top of the repositories.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"eduhub/internal/cache"
	"eduhub/internal/models"
	"eduhub/internal/observability"
	"eduhub/internal/repository"
	"eduhub/internal/validation"

	"gorm.io/gorm"
)

// AcademyProvisioner creates the academy for an approved inquiry inside the
// transition transaction. A returned error aborts the whole transition.
type AcademyProvisioner func(tx *gorm.DB, inquiry *models.Inquiry) (*models.Academy, error)

// InquiryService implements the inquiry lifecycle: public submission, admin
// listing, and guarded status transitions with atomic academy provisioning.
type InquiryService struct {
	db          *gorm.DB
	inquiryRepo repository.InquiryRepository
	provision   AcademyProvisioner
}

// NewInquiryService returns an InquiryService with the default provisioner.
func NewInquiryService(db *gorm.DB, inquiryRepo repository.InquiryRepository) *InquiryService {
	return &InquiryService{
		db:          db,
		inquiryRepo: inquiryRepo,
		provision:   defaultProvisioner,
	}
}

func defaultProvisioner(tx *gorm.DB, inquiry *models.Inquiry) (*models.Academy, error) {
	academy := &models.Academy{Name: inquiry.AcademyName}
	if err := tx.Create(academy).Error; err != nil {
		return nil, err
	}
	return academy, nil
}

// SubmitInquiryInput carries the public submission form fields.
type SubmitInquiryInput struct {
	AcademyName string
	FullName    string
	Email       string
	Phone       string
	Content     string
}

// SubmitInquiry validates the form and stores a new pending inquiry.
func (s *InquiryService) SubmitInquiry(ctx context.Context, in SubmitInquiryInput) (*models.Inquiry, error) {
	in.AcademyName = strings.TrimSpace(in.AcademyName)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Content = strings.TrimSpace(in.Content)

	if err := validation.ValidateRequiredName("academy_name", in.AcademyName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateRequiredName("full_name", in.FullName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Email == "" {
		return nil, models.NewValidationError("email is required")
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePhone(in.Phone); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateInquiryContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	inquiry := &models.Inquiry{
		AcademyName: in.AcademyName,
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		Content:     in.Content,
		Status:      models.InquiryStatusPending,
	}
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	observability.InquiriesSubmitted.Inc()
	return inquiry, nil
}

// GetInquiry returns a single inquiry with its processing references.
func (s *InquiryService) GetInquiry(ctx context.Context, id uint) (*models.Inquiry, error) {
	return s.inquiryRepo.GetByID(ctx, id)
}

// InquiryListing is a cached page of admin listing results.
type InquiryListing struct {
	Items []models.Inquiry `json:"items"`
	Total int64            `json:"total"`
}

// ListInquiries serves admin listings through the cache. Pages are keyed by
// their filter signature and dropped whenever any transition succeeds.
func (s *InquiryService) ListInquiries(ctx context.Context, filter repository.InquiryFilter) (*InquiryListing, error) {
	var listing InquiryListing
	key := cache.AdminInquiryListKey(filter.Signature())

	err := cache.Aside(ctx, key, &listing, cache.AdminInquiryListTTL, func() error {
		items, total, err := s.inquiryRepo.List(ctx, filter)
		if err != nil {
			return err
		}
		listing.Items = items
		listing.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// CountByStatus exposes per-status totals for dashboards.
func (s *InquiryService) CountByStatus(ctx context.Context) (map[models.InquiryStatus]int64, error) {
	return s.inquiryRepo.CountByStatus(ctx)
}

// TransitionInput carries an admin's status transition request.
type TransitionInput struct {
	InquiryID       uint
	RequestedStatus models.InquiryStatus
	AdminComment    string
	ActingAdminID   uint
}

// ApplyTransition moves an inquiry to the requested status. Preconditions are
// checked in a fixed order: authentication, existence, then the terminal-state
// guard under a row lock. Approval provisions the academy in the same
// transaction; any provisioning error rolls everything back and the stored
// inquiry is untouched.
func (s *InquiryService) ApplyTransition(ctx context.Context, in TransitionInput) (*models.Inquiry, error) {
	if in.ActingAdminID == 0 {
		return nil, s.failTransition(models.NewUnauthorizedError("authentication required"))
	}
	if !models.ValidInquiryStatus(string(in.RequestedStatus)) {
		return nil, s.failTransition(models.NewValidationError("unknown status " + string(in.RequestedStatus)))
	}

	var updated models.Inquiry

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inquiry, err := repository.LockInquiryForUpdate(tx, in.InquiryID)
		if err != nil {
			return err
		}

		// The guard re-checks under the lock so concurrent transitions on the
		// same inquiry serialize and the loser sees the final state.
		if inquiry.Status == models.InquiryStatusApproved {
			return models.NewTerminalStateError(inquiry.ID)
		}

		now := time.Now().UTC()
		inquiry.Status = in.RequestedStatus
		inquiry.AdminComment = strings.TrimSpace(in.AdminComment)
		inquiry.ProcessedByUserID = &in.ActingAdminID
		inquiry.ProcessedAt = &now

		if in.RequestedStatus == models.InquiryStatusApproved {
			academy, err := s.provision(tx, inquiry)
			if err != nil {
				var appErr *models.AppError
				if errors.As(err, &appErr) {
					return err
				}
				return models.NewProvisioningError(err)
			}
			inquiry.AcademyID = &academy.ID
		}

		if err := tx.Save(inquiry).Error; err != nil {
			return models.NewStoreError(err)
		}

		updated = *inquiry
		return nil
	})
	if txErr != nil {
		return nil, s.failTransition(txErr)
	}

	cache.InvalidateInquiryListings(ctx)
	observability.InquiryTransitions.WithLabelValues(string(in.RequestedStatus)).Inc()
	if in.RequestedStatus == models.InquiryStatusApproved {
		observability.AcademiesProvisioned.Inc()
	}

	return &updated, nil
}

func (s *InquiryService) failTransition(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		observability.InquiryTransitionFailures.WithLabelValues(appErr.Code).Inc()
	} else {
		observability.InquiryTransitionFailures.WithLabelValues(models.CodeInternal).Inc()
	}
	return err
}
