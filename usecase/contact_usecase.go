package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	"vibes-backend/infrastructure/logger"
	errs "vibes-backend/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IContactUseCase defines the interface for contact use case operations
type IContactUseCase interface {
	SubmitContact(ctx context.Context, req *dto.ContactRequest) (*model.Contact, error)
	SubmitServiceRequest(ctx context.Context, req *dto.ServiceRequest) (*model.Contact, error)
	GetByID(ctx context.Context, id string) (*model.Contact, error)
	List(ctx context.Context, status string, page, pageSize int) ([]model.Contact, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (map[string]int64, error)
}

// ContactUseCase handles contact-form and service-request submissions.
type ContactUseCase struct {
	contactRepo repository.IContact
	mailer      repository.IMailer
}

// NewContactUseCase creates a new contact use case instance.
func NewContactUseCase(contactRepo repository.IContact, mailer repository.IMailer) IContactUseCase {
	return &ContactUseCase{contactRepo: contactRepo, mailer: mailer}
}

// SubmitContact stores a contact-form submission and notifies the site
// owners. Notification failures are logged, not surfaced; the submission is
// already persisted.
func (u *ContactUseCase) SubmitContact(ctx context.Context, req *dto.ContactRequest) (*model.Contact, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, fmt.Errorf("invalid email address: %w", errs.ErrInvalidInput)
	}

	now := time.Now()
	contact := &model.Contact{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Status:    model.ContactStatusNew,
		Priority:  derivePriority(req.Subject, req.Message),
		Category:  "general",
		Source:    "contact_form",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if contact.Subject == "" || contact.Message == "" {
		return nil, fmt.Errorf("subject and message are required: %w", errs.ErrInvalidInput)
	}

	if err := u.contactRepo.Create(ctx, contact); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to store contact submission")
		return nil, err
	}
	u.notify(ctx, contact)
	return contact, nil
}

// SubmitServiceRequest stores a service-request submission. Service requests
// are business leads, so they start at high priority.
func (u *ContactUseCase) SubmitServiceRequest(ctx context.Context, req *dto.ServiceRequest) (*model.Contact, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, fmt.Errorf("invalid email address: %w", errs.ErrInvalidInput)
	}

	message := req.Description
	if req.Budget != "" {
		message += "\n\nBudget: " + req.Budget
	}
	if req.Timeline != "" {
		message += "\nTimeline: " + req.Timeline
	}

	now := time.Now()
	contact := &model.Contact{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   "Service request: " + strings.TrimSpace(req.Service),
		Message:   message,
		Status:    model.ContactStatusNew,
		Priority:  model.ContactPriorityHigh,
		Category:  "service",
		Source:    "service_form",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.contactRepo.Create(ctx, contact); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to store service request")
		return nil, err
	}
	u.notify(ctx, contact)
	return contact, nil
}

// GetByID fetches one submission.
func (u *ContactUseCase) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	return u.contactRepo.GetByID(ctx, id)
}

// List returns a page of submissions, optionally filtered by status.
func (u *ContactUseCase) List(ctx context.Context, status string, page, pageSize int) ([]model.Contact, int64, error) {
	if status != "" && !model.ValidContactStatus(status) {
		return nil, 0, fmt.Errorf("unknown status %q: %w", status, errs.ErrInvalidInput)
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return u.contactRepo.List(ctx, status, pageSize, (page-1)*pageSize)
}

// UpdateStatus moves a submission through the handling workflow.
func (u *ContactUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidContactStatus(status) {
		return fmt.Errorf("unknown status %q: %w", status, errs.ErrInvalidInput)
	}
	return u.contactRepo.UpdateStatus(ctx, id, status)
}

// Delete removes a submission.
func (u *ContactUseCase) Delete(ctx context.Context, id string) error {
	return u.contactRepo.Delete(ctx, id)
}

// Stats returns submission counts per status.
func (u *ContactUseCase) Stats(ctx context.Context) (map[string]int64, error) {
	return u.contactRepo.CountByStatus(ctx)
}

func (u *ContactUseCase) notify(ctx context.Context, contact *model.Contact) {
	if u.mailer == nil {
		return
	}
	if err := u.mailer.SendContactNotification(ctx, contact); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to send contact notification email")
	}
}

// derivePriority bumps submissions whose text signals urgency.
func derivePriority(subject, message string) string {
	text := strings.ToLower(subject + " " + message)
	if strings.Contains(text, "urgent") || strings.Contains(text, "emergency") {
		return model.ContactPriorityUrgent
	}
	if strings.Contains(text, "asap") || strings.Contains(text, "important") {
		return model.ContactPriorityHigh
	}
	return model.ContactPriorityMedium
}
