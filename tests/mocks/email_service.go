package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, firstName string) error {
	args := m.Called(ctx, toEmail, firstName)
	return args.Error(0)
}

func (m *EmailService) SendBookingDecisionEmail(ctx context.Context, toEmail, firstName, eventName, facilityName, date string, approved bool, notes *string) error {
	args := m.Called(ctx, toEmail, firstName, eventName, facilityName, date, approved, notes)
	return args.Error(0)
}
