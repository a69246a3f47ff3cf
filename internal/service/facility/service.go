package facility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"campus-booking/internal/config"
	"campus-booking/internal/domain"
	"campus-booking/internal/repository"
)

var (
	ErrFacilityNotFound = errors.New("facility not found")
	ErrStorageDisabled  = errors.New("image storage is not configured")
)

const listCacheKey = "facilities:list"

type Service interface {
	Create(ctx context.Context, input domain.CreateFacilityInput) (*domain.Facility, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error)
	List(ctx context.Context) ([]domain.Facility, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateFacilityInput) (*domain.Facility, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, fileName string, fileSize int64, contentType string, reader io.Reader) (*domain.Facility, error)
}

type service struct {
	facilityRepo repository.FacilityRepository
	minioClient  *minio.Client
	redis        *redis.Client
	cfg          *config.Config
}

func NewService(facilityRepo repository.FacilityRepository, minioClient *minio.Client, redis *redis.Client, cfg *config.Config) Service {
	return &service{
		facilityRepo: facilityRepo,
		minioClient:  minioClient,
		redis:        redis,
		cfg:          cfg,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateFacilityInput) (*domain.Facility, error) {
	status := domain.FacilityAvailable
	if input.Status != nil {
		status = domain.FacilityStatus(*input.Status)
	}

	facility := &domain.Facility{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		Capacity:    input.Capacity,
		Amenities:   input.Amenities,
		Status:      status,
	}

	if err := s.facilityRepo.Create(ctx, facility); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return facility, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}
	return facility, nil
}

func (s *service) List(ctx context.Context) ([]domain.Facility, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, listCacheKey).Result(); err == nil {
			var facilities []domain.Facility
			if json.Unmarshal([]byte(cached), &facilities) == nil {
				return facilities, nil
			}
		}
	}

	facilities, err := s.facilityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(facilities); err == nil {
			_ = s.redis.Set(ctx, listCacheKey, data, 5*time.Minute).Err()
		}
	}

	return facilities, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateFacilityInput) (*domain.Facility, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	if input.Name != nil {
		facility.Name = *input.Name
	}
	if input.Description != nil {
		facility.Description = *input.Description
	}
	if input.Location != nil {
		facility.Location = *input.Location
	}
	if input.Capacity != nil {
		facility.Capacity = *input.Capacity
	}
	if input.Amenities != nil {
		facility.Amenities = *input.Amenities
	}
	if input.Status != nil {
		facility.Status = domain.FacilityStatus(*input.Status)
	}

	if err := s.facilityRepo.Update(ctx, facility); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return facility, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if facility == nil {
		return ErrFacilityNotFound
	}

	if err := s.facilityRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *service) UploadImage(ctx context.Context, id uuid.UUID, fileName string, fileSize int64, contentType string, reader io.Reader) (*domain.Facility, error) {
	if s.minioClient == nil {
		return nil, ErrStorageDisabled
	}

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	storagePath := fmt.Sprintf("facilities/%s/%s", id.String(), fileName)

	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	imageURL := s.publicURL(storagePath)
	if err := s.facilityRepo.UpdateImageURL(ctx, id, imageURL); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	facility.ImageURL = &imageURL
	s.invalidateListCache(ctx)
	return facility, nil
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, storagePath)
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, listCacheKey).Err()
	}
}
