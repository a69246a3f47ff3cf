package mocks

import (
	"context"

	"campus-booking/internal/domain"
	"campus-booking/internal/service/audit"

	"github.com/stretchr/testify/mock"
)

type AuditService struct {
	mock.Mock
}

func (m *AuditService) Record(ctx context.Context, input audit.RecordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *AuditService) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.PaginatedResponse[domain.AuditLog]), args.Error(1)
}
