package usecase_test

import (
	"context"
	"errors"
	"testing"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
	errs "vibes-backend/pkg/errors"
	"vibes-backend/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubmitContactStoresSubmission(t *testing.T) {
	repo := new(MockContactRepository)
	mailer := new(MockMailer)
	uc := usecase.NewContactUseCase(repo, mailer)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil).Once()
	mailer.On("SendContactNotification", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil).Once()

	contact, err := uc.SubmitContact(context.Background(), &dto.ContactRequest{
		Name:    "Maria",
		Email:   "maria@example.com",
		Subject: "Booking inquiry",
		Message: "I would like to book a studio session.",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.ContactStatusNew, contact.Status)
	assert.Equal(t, model.ContactPriorityMedium, contact.Priority)
	assert.Equal(t, "contact_form", contact.Source)

	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestSubmitContactRejectsBadEmail(t *testing.T) {
	repo := new(MockContactRepository)
	uc := usecase.NewContactUseCase(repo, nil)

	_, err := uc.SubmitContact(context.Background(), &dto.ContactRequest{
		Name:    "Maria",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "Hello",
	})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestSubmitContactDerivesPriority(t *testing.T) {
	repo := new(MockContactRepository)
	uc := usecase.NewContactUseCase(repo, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

	urgent, err := uc.SubmitContact(context.Background(), &dto.ContactRequest{
		Name: "A", Email: "a@example.com", Subject: "URGENT: site down", Message: "Please help",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.ContactPriorityUrgent, urgent.Priority)

	high, err := uc.SubmitContact(context.Background(), &dto.ContactRequest{
		Name: "B", Email: "b@example.com", Subject: "Question", Message: "Need this asap please",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.ContactPriorityHigh, high.Priority)
}

func TestSubmitContactSurvivesMailerFailure(t *testing.T) {
	repo := new(MockContactRepository)
	mailer := new(MockMailer)
	uc := usecase.NewContactUseCase(repo, mailer)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil).Once()
	mailer.On("SendContactNotification", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	_, err := uc.SubmitContact(context.Background(), &dto.ContactRequest{
		Name: "Maria", Email: "maria@example.com", Subject: "Hi", Message: "Hello",
	})
	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestSubmitServiceRequest(t *testing.T) {
	repo := new(MockContactRepository)
	uc := usecase.NewContactUseCase(repo, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil).Once()

	contact, err := uc.SubmitServiceRequest(context.Background(), &dto.ServiceRequest{
		Name:        "Maria",
		Email:       "maria@example.com",
		Service:     "Event coverage",
		Description: "Two day conference",
		Budget:      "5000 USD",
		Timeline:    "October",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.ContactPriorityHigh, contact.Priority)
	assert.Equal(t, "Service request: Event coverage", contact.Subject)
	assert.Contains(t, contact.Message, "Budget: 5000 USD")
	assert.Contains(t, contact.Message, "Timeline: October")
	assert.Equal(t, "service_form", contact.Source)
}

func TestListValidatesStatus(t *testing.T) {
	repo := new(MockContactRepository)
	uc := usecase.NewContactUseCase(repo, nil)

	_, _, err := uc.List(context.Background(), "bogus", 1, 20)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	repo.On("List", mock.Anything, "new", 20, 0).Return([]model.Contact{}, int64(0), nil).Once()
	_, _, err = uc.List(context.Background(), "new", 0, 0)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatusValidates(t *testing.T) {
	repo := new(MockContactRepository)
	uc := usecase.NewContactUseCase(repo, nil)

	err := uc.UpdateStatus(context.Background(), "656f0c", "weird")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	repo.On("UpdateStatus", mock.Anything, "656f0c", "replied").Return(nil).Once()
	assert.NoError(t, uc.UpdateStatus(context.Background(), "656f0c", "replied"))
	repo.AssertExpectations(t)
}
