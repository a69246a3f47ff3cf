package handler

import "campus-booking/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Facility     *FacilityHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Audit        *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Facility:     NewFacilityHandler(services.Facility),
		Booking:      NewBookingHandler(services.Booking),
		Notification: NewNotificationHandler(services.Notification),
		Report:       NewReportHandler(services.Report),
		Audit:        NewAuditHandler(services.Audit),
	}
}
