package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"campus-booking/internal/domain"
	"campus-booking/internal/repository"
	"campus-booking/internal/service/email"
)

type Service interface {
	Create(ctx context.Context, notif *domain.Notification) error
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	NotifyBookingSubmitted(ctx context.Context, booking *domain.Booking) error
	NotifyBookingDecided(ctx context.Context, booking *domain.Booking, status domain.BookingStatus, notes *string) error
}

type service struct {
	notifRepo    repository.NotificationRepository
	userRepo     repository.UserRepository
	facilityRepo repository.FacilityRepository
	emailSvc     email.Service
}

func NewService(
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	facilityRepo repository.FacilityRepository,
	emailSvc email.Service,
) Service {
	return &service{
		notifRepo:    notifRepo,
		userRepo:     userRepo,
		facilityRepo: facilityRepo,
		emailSvc:     emailSvc,
	}
}

func (s *service) Create(ctx context.Context, notif *domain.Notification) error {
	return s.notifRepo.Create(ctx, notif)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) NotifyBookingSubmitted(ctx context.Context, booking *domain.Booking) error {
	facilityName := s.facilityName(ctx, booking.FacilityID)

	notif := &domain.Notification{
		ID:        uuid.New(),
		UserID:    booking.UserID,
		BookingID: &booking.ID,
		Type:      domain.NotifInfo,
		Title:     "Booking Submitted",
		Message:   fmt.Sprintf("Your booking %q for %s on %s is awaiting review.", booking.EventName, facilityName, booking.Date),
		Status:    domain.NotifUnread,
	}

	return s.notifRepo.Create(ctx, notif)
}

func (s *service) NotifyBookingDecided(ctx context.Context, booking *domain.Booking, status domain.BookingStatus, notes *string) error {
	facilityName := s.facilityName(ctx, booking.FacilityID)

	notif := &domain.Notification{
		ID:        uuid.New(),
		UserID:    booking.UserID,
		BookingID: &booking.ID,
		Status:    domain.NotifUnread,
	}

	switch status {
	case domain.BookingApproved:
		notif.Type = domain.NotifSuccess
		notif.Title = "Booking Approved"
		notif.Message = fmt.Sprintf("Your booking %q for %s on %s has been approved.", booking.EventName, facilityName, booking.Date)
	default:
		notif.Type = domain.NotifError
		notif.Title = "Booking Rejected"
		notif.Message = fmt.Sprintf("Your booking %q for %s on %s has been rejected.", booking.EventName, facilityName, booking.Date)
		if notes != nil && *notes != "" {
			notif.Message += fmt.Sprintf(" Reason: %s", *notes)
		}
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	// Decision emails are best effort; the in-app notification is the
	// durable record.
	if s.emailSvc != nil {
		if owner, err := s.userRepo.GetByID(ctx, booking.UserID); err == nil && owner != nil {
			go func(toEmail, name, eventName, facility, date string, approved bool, notes *string) {
				ctx := context.Background()
				if err := s.emailSvc.SendBookingDecisionEmail(ctx, toEmail, name, eventName, facility, date, approved, notes); err != nil {
					log.Printf("Failed to send booking decision email to %s: %v", toEmail, err)
				}
			}(owner.Email, owner.FirstName, booking.EventName, facilityName, booking.Date, status == domain.BookingApproved, notes)
		}
	}

	return nil
}

func (s *service) facilityName(ctx context.Context, facilityID uuid.UUID) string {
	facility, err := s.facilityRepo.GetByID(ctx, facilityID)
	if err != nil || facility == nil {
		return "the facility"
	}
	return facility.Name
}
