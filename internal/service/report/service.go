package report

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"campus-booking/internal/domain"
	"campus-booking/internal/repository"
)

const statsCacheKey = "reports:stats"

// Stats holds exact counts recomputed from the full booking, user and
// facility tables. Cached briefly in Redis; every booking mutation
// invalidates the cache, so the numbers never go stale.
type Stats struct {
	Total           int64                             `json:"total"`
	Pending         int64                             `json:"pending"`
	Approved        int64                             `json:"approved"`
	Rejected        int64                             `json:"rejected"`
	TotalFacilities int64                             `json:"totalFacilities"`
	UsersByRole     map[string]int64                  `json:"usersByRole"`
	ByFacility      []repository.FacilityBookingCount `json:"byFacility"`
	ByMonth         []repository.MonthlyBookingCount  `json:"byMonth"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
	InvalidateStats(ctx context.Context)
}

type service struct {
	bookingRepo  repository.BookingRepository
	userRepo     repository.UserRepository
	facilityRepo repository.FacilityRepository
	redis        *redis.Client
}

func NewService(bookingRepo repository.BookingRepository, userRepo repository.UserRepository, facilityRepo repository.FacilityRepository, redis *redis.Client) Service {
	return &service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		facilityRepo: facilityRepo,
		redis:        redis,
	}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	byStatus, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byFacility, err := s.bookingRepo.CountByFacility(ctx)
	if err != nil {
		return nil, err
	}

	byMonth, err := s.bookingRepo.CountByMonth(ctx)
	if err != nil {
		return nil, err
	}

	usersByRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	totalFacilities, err := s.facilityRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Pending:         byStatus[domain.BookingPending],
		Approved:        byStatus[domain.BookingApproved],
		Rejected:        byStatus[domain.BookingRejected],
		TotalFacilities: totalFacilities,
		UsersByRole:     usersByRole,
		ByFacility:      byFacility,
		ByMonth:         byMonth,
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, statsCacheKey, statsJSON, 5*time.Minute).Err()
		}
	}

	return stats, nil
}

func (s *service) InvalidateStats(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, statsCacheKey).Err()
	}
}
