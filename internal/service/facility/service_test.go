package facility_test

import (
	"context"
	"testing"

	"campus-booking/internal/config"
	"campus-booking/internal/domain"
	"campus-booking/internal/service/facility"
	"campus-booking/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService() (facility.Service, *mocks.FacilityRepository) {
	facilityRepo := new(mocks.FacilityRepository)
	svc := facility.NewService(facilityRepo, nil, nil, &config.Config{})
	return svc, facilityRepo
}

func TestFacilityService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults To Available", func(t *testing.T) {
		svc, facilityRepo := newTestService()

		facilityRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.Facility) bool {
			return f.Status == domain.FacilityAvailable && f.Name == "Lecture Hall B"
		})).Return(nil).Once()

		created, err := svc.Create(ctx, domain.CreateFacilityInput{Name: "Lecture Hall B"})

		assert.NoError(t, err)
		assert.Equal(t, domain.FacilityAvailable, created.Status)
		facilityRepo.AssertExpectations(t)
	})

	t.Run("Explicit Status", func(t *testing.T) {
		svc, facilityRepo := newTestService()

		facilityRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.Facility) bool {
			return f.Status == domain.FacilityMaintenance
		})).Return(nil).Once()

		status := "maintenance"
		created, err := svc.Create(ctx, domain.CreateFacilityInput{Name: "Pool", Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, domain.FacilityMaintenance, created.Status)
	})
}

func TestFacilityService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Not Found", func(t *testing.T) {
		svc, facilityRepo := newTestService()

		facilityRepo.On("GetByID", ctx, id).Return(nil, nil).Once()

		_, err := svc.Update(ctx, id, domain.UpdateFacilityInput{})

		assert.ErrorIs(t, err, facility.ErrFacilityNotFound)
		facilityRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Partial Patch", func(t *testing.T) {
		svc, facilityRepo := newTestService()

		facilityRepo.On("GetByID", ctx, id).Return(&domain.Facility{
			ID: id, Name: "Gym", Status: domain.FacilityAvailable,
		}, nil).Once()
		facilityRepo.On("Update", ctx, mock.MatchedBy(func(f *domain.Facility) bool {
			return f.Name == "Gym" && f.Status == domain.FacilityClosed
		})).Return(nil).Once()

		status := "closed"
		updated, err := svc.Update(ctx, id, domain.UpdateFacilityInput{Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, domain.FacilityClosed, updated.Status)
	})
}

func TestFacilityService_UploadImage_StorageDisabled(t *testing.T) {
	svc, facilityRepo := newTestService()

	_, err := svc.UploadImage(context.Background(), uuid.New(), "photo.jpg", 1024, "image/jpeg", nil)

	assert.ErrorIs(t, err, facility.ErrStorageDisabled)
	facilityRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestFacilityService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	svc, facilityRepo := newTestService()

	facilityRepo.On("GetByID", ctx, id).Return(&domain.Facility{ID: id}, nil).Once()
	facilityRepo.On("Delete", ctx, id).Return(nil).Once()

	assert.NoError(t, svc.Delete(ctx, id))
	facilityRepo.AssertExpectations(t)
}
