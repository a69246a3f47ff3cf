package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"campus-booking/internal/config"
	"campus-booking/internal/repository"
	"campus-booking/internal/service/audit"
	"campus-booking/internal/service/auth"
	"campus-booking/internal/service/booking"
	"campus-booking/internal/service/email"
	"campus-booking/internal/service/facility"
	"campus-booking/internal/service/notification"
	"campus-booking/internal/service/report"
	"campus-booking/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Facility     facility.Service
	Booking      booking.Service
	Notification notification.Service
	Report       report.Service
	Email        email.Service
	Audit        audit.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	auditService := audit.NewService(repos.AuditLog)
	authService := auth.NewService(repos.User, emailService, cfg)
	userService := user.NewService(repos.User, auditService)
	facilityService := facility.NewService(repos.Facility, minioClient, redis, cfg)
	notificationService := notification.NewService(repos.Notification, repos.User, repos.Facility, emailService)
	reportService := report.NewService(repos.Booking, repos.User, repos.Facility, redis)
	bookingService := booking.NewService(repos.Booking, repos.Facility, repos.User, notificationService, reportService, auditService)

	return &Services{
		Auth:         authService,
		User:         userService,
		Facility:     facilityService,
		Booking:      bookingService,
		Notification: notificationService,
		Report:       reportService,
		Email:        emailService,
		Audit:        auditService,
	}
}
