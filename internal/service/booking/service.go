package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"campus-booking/internal/domain"
	"campus-booking/internal/repository"
	"campus-booking/internal/service/audit"
	"campus-booking/internal/service/notification"
	"campus-booking/internal/service/report"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrFacilityNotFound = errors.New("facility not found")
	ErrNotOwner         = errors.New("booking belongs to another user")
	ErrNotPending       = errors.New("booking has already been reviewed")
	ErrNotAdmin         = errors.New("insufficient permissions to review booking")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

// RequestMeta carries request context for the audit trail.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	List(ctx context.Context, status *domain.BookingStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Booking], error)
	Update(ctx context.Context, id, userID uuid.UUID, input domain.UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Approve(ctx context.Context, id, reviewerID uuid.UUID, notes *string, meta *RequestMeta) error
	Reject(ctx context.Context, id, reviewerID uuid.UUID, notes *string, meta *RequestMeta) error
}

type service struct {
	bookingRepo  repository.BookingRepository
	facilityRepo repository.FacilityRepository
	userRepo     repository.UserRepository
	notifSvc     notification.Service
	reportSvc    report.Service
	auditSvc     audit.Service
}

func NewService(
	bookingRepo repository.BookingRepository,
	facilityRepo repository.FacilityRepository,
	userRepo repository.UserRepository,
	notifSvc notification.Service,
	reportSvc report.Service,
	auditSvc audit.Service,
) Service {
	return &service{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		userRepo:     userRepo,
		notifSvc:     notifSvc,
		reportSvc:    reportSvc,
		auditSvc:     auditSvc,
	}
}

// Create stores a new booking owned by the caller. The owner and the
// pending status are forced server-side; any client-supplied values for
// them are ignored. The referenced facility must exist, but its
// availability status is not checked and no overlap check is made against
// other bookings on the same facility — approval is a manual admin review.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := validateTimeRange(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	facility, err := s.facilityRepo.GetByID(ctx, input.FacilityID)
	if err != nil {
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	booking := &domain.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		FacilityID:  input.FacilityID,
		EventName:   input.EventName,
		Description: input.Description,
		Purpose:     input.Purpose,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Attendees:   input.Attendees,
		Equipment:   input.Equipment,
		Status:      domain.BookingPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.notifSvc.NotifyBookingSubmitted(ctx, booking); err != nil {
		log.Printf("Failed to create submission notification for booking %s: %v", booking.ID, err)
	}

	s.invalidateReports(ctx)

	booking.Facility = facility
	return booking, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		if facility, err := s.facilityRepo.GetByID(ctx, bookings[i].FacilityID); err == nil {
			bookings[i].Facility = facility
		}
	}
	return bookings, nil
}

func (s *service) List(ctx context.Context, status *domain.BookingStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Booking], error) {
	bookings, total, err := s.bookingRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Booking]{}, err
	}

	for i := range bookings {
		if facility, err := s.facilityRepo.GetByID(ctx, bookings[i].FacilityID); err == nil {
			bookings[i].Facility = facility
		}
		if owner, err := s.userRepo.GetByID(ctx, bookings[i].UserID); err == nil {
			bookings[i].Owner = owner
		}
		if bookings[i].ReviewedBy != nil {
			if reviewer, err := s.userRepo.GetByID(ctx, *bookings[i].ReviewedBy); err == nil {
				bookings[i].Reviewer = reviewer
			}
		}
	}

	return domain.NewPaginatedResponse(bookings, params.Page, params.PageSize, total), nil
}

// Update edits a booking. Only the owner may edit, and only while the
// booking is still pending.
func (s *service) Update(ctx context.Context, id, userID uuid.UUID, input domain.UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, ErrNotOwner
	}
	if booking.Status != domain.BookingPending {
		return nil, ErrNotPending
	}

	if input.EventName != nil {
		booking.EventName = *input.EventName
	}
	if input.Description != nil {
		booking.Description = *input.Description
	}
	if input.Purpose != nil {
		booking.Purpose = *input.Purpose
	}
	if input.Date != nil {
		booking.Date = *input.Date
	}
	if input.StartTime != nil {
		booking.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		booking.EndTime = *input.EndTime
	}
	if input.Attendees != nil {
		booking.Attendees = *input.Attendees
	}
	if input.Equipment != nil {
		booking.Equipment = *input.Equipment
	}

	if err := validateTimeRange(booking.StartTime, booking.EndTime); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// Delete removes a booking. Only the owner may delete, and only while the
// booking is still pending.
func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if booking.UserID != userID {
		return ErrNotOwner
	}
	if booking.Status != domain.BookingPending {
		return ErrNotPending
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateReports(ctx)
	return nil
}

func (s *service) Approve(ctx context.Context, id, reviewerID uuid.UUID, notes *string, meta *RequestMeta) error {
	return s.review(ctx, id, reviewerID, domain.BookingApproved, notes, meta)
}

func (s *service) Reject(ctx context.Context, id, reviewerID uuid.UUID, notes *string, meta *RequestMeta) error {
	return s.review(ctx, id, reviewerID, domain.BookingRejected, notes, meta)
}

// review applies an admin decision. Status, reviewer, review timestamp and
// notes are overwritten unconditionally: a booking that was already decided
// can be re-reviewed, and the latest decision wins. Every review is
// recorded in the audit trail.
func (s *service) review(ctx context.Context, id, reviewerID uuid.UUID, status domain.BookingStatus, notes *string, meta *RequestMeta) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	reviewer, err := s.userRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return err
	}
	if reviewer == nil || !reviewer.IsAdmin() {
		return ErrNotAdmin
	}

	reviewedAt := time.Now()
	if err := s.bookingRepo.UpdateStatus(ctx, id, status, reviewerID, reviewedAt, notes); err != nil {
		return err
	}

	if err := s.notifSvc.NotifyBookingDecided(ctx, booking, status, notes); err != nil {
		log.Printf("Failed to create decision notification for booking %s: %v", booking.ID, err)
	}

	action := "APPROVE_BOOKING"
	if status == domain.BookingRejected {
		action = "REJECT_BOOKING"
	}
	s.logAudit(ctx, reviewerID, action, booking, status, notes, meta)

	s.invalidateReports(ctx)
	return nil
}

func (s *service) logAudit(ctx context.Context, reviewerID uuid.UUID, action string, booking *domain.Booking, status domain.BookingStatus, notes *string, meta *RequestMeta) {
	if s.auditSvc == nil {
		return
	}

	input := audit.RecordInput{
		UserID:     reviewerID,
		Action:     action,
		EntityType: "BOOKING",
		EntityID:   booking.ID,
		OldValue:   map[string]interface{}{"status": booking.Status},
		NewValue:   map[string]interface{}{"status": status, "notes": notes},
	}
	if meta != nil {
		input.IPAddress = &meta.IPAddress
		input.UserAgent = &meta.UserAgent
	}

	if err := s.auditSvc.Record(ctx, input); err != nil {
		log.Printf("Failed to write audit log for booking %s: %v", booking.ID, err)
	}
}

func (s *service) invalidateReports(ctx context.Context) {
	if s.reportSvc != nil {
		s.reportSvc.InvalidateStats(ctx)
	}
}

func validateTimeRange(start, end string) error {
	startAt, err := time.Parse("15:04", start)
	if err != nil {
		return ErrInvalidTimeRange
	}
	endAt, err := time.Parse("15:04", end)
	if err != nil {
		return ErrInvalidTimeRange
	}
	if !endAt.After(startAt) {
		return ErrInvalidTimeRange
	}
	return nil
}
