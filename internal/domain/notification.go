package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID          `json:"id" db:"id"`
	UserID    uuid.UUID          `json:"userId" db:"user_id"`
	BookingID *uuid.UUID         `json:"bookingId,omitempty" db:"booking_id"`
	Type      NotificationType   `json:"type" db:"type"`
	Title     string             `json:"title" db:"title"`
	Message   string             `json:"message" db:"message"`
	Status    NotificationStatus `json:"status" db:"status"`
	ReadAt    *time.Time         `json:"readAt,omitempty" db:"read_at"`
	CreatedAt time.Time          `json:"createdAt" db:"created_at"`
}

type NotificationType string

const (
	NotifInfo    NotificationType = "info"
	NotifSuccess NotificationType = "success"
	NotifWarning NotificationType = "warning"
	NotifError   NotificationType = "error"
)

type NotificationStatus string

const (
	NotifUnread NotificationStatus = "unread"
	NotifRead   NotificationStatus = "read"
)
