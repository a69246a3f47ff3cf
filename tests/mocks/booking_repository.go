package mocks

import (
	"context"
	"time"

	"campus-booking/internal/domain"
	"campus-booking/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *BookingRepository) List(ctx context.Context, status *domain.BookingStatus, params domain.PaginationParams) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, reviewedBy uuid.UUID, reviewedAt time.Time, notes *string) error {
	args := m.Called(ctx, id, status, reviewedBy, reviewedAt, notes)
	return args.Error(0)
}

func (m *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.BookingStatus]int64), args.Error(1)
}

func (m *BookingRepository) CountByFacility(ctx context.Context) ([]repository.FacilityBookingCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FacilityBookingCount), args.Error(1)
}

func (m *BookingRepository) CountByMonth(ctx context.Context) ([]repository.MonthlyBookingCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MonthlyBookingCount), args.Error(1)
}
