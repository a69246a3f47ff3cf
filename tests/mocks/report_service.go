package mocks

import (
	"context"

	"campus-booking/internal/service/report"

	"github.com/stretchr/testify/mock"
)

type ReportService struct {
	mock.Mock
}

func (m *ReportService) GetStats(ctx context.Context) (*report.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Stats), args.Error(1)
}

func (m *ReportService) InvalidateStats(ctx context.Context) {
	m.Called(ctx)
}
