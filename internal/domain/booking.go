package domain

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	UserID      uuid.UUID     `json:"userId" db:"user_id"`
	FacilityID  uuid.UUID     `json:"facilityId" db:"facility_id"`
	EventName   string        `json:"eventName" db:"event_name"`
	Description *string       `json:"description,omitempty" db:"description"`
	Purpose     string        `json:"purpose" db:"purpose"`
	Date        string        `json:"date" db:"event_date"`
	StartTime   string        `json:"startTime" db:"start_time"`
	EndTime     string        `json:"endTime" db:"end_time"`
	Attendees   *int          `json:"attendees,omitempty" db:"attendees"`
	Equipment   *string       `json:"equipment,omitempty" db:"equipment"`
	Status      BookingStatus `json:"status" db:"status"`
	ReviewedBy  *uuid.UUID    `json:"reviewedBy,omitempty" db:"reviewed_by"`
	ReviewedAt  *time.Time    `json:"reviewedAt,omitempty" db:"reviewed_at"`
	AdminNotes  *string       `json:"adminNotes,omitempty" db:"admin_notes"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`

	Facility *Facility `json:"facility,omitempty" db:"-"`
	Owner    *User     `json:"user,omitempty" db:"-"`
	Reviewer *User     `json:"reviewer,omitempty" db:"-"`
}

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected:
		return true
	default:
		return false
	}
}

type CreateBookingInput struct {
	FacilityID  uuid.UUID `json:"facilityId" validate:"required"`
	EventName   string    `json:"eventName" validate:"required,min=2,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Purpose     string    `json:"purpose" validate:"required,min=2,max=500"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string    `json:"startTime" validate:"required,datetime=15:04"`
	EndTime     string    `json:"endTime" validate:"required,datetime=15:04"`
	Attendees   *int      `json:"attendees,omitempty" validate:"omitempty,gt=0"`
	Equipment   *string   `json:"equipment,omitempty" validate:"omitempty,max=2000"`
}

type UpdateBookingInput struct {
	EventName   *string  `json:"eventName,omitempty" validate:"omitempty,min=2,max=200"`
	Description **string `json:"description,omitempty"`
	Purpose     *string  `json:"purpose,omitempty" validate:"omitempty,min=2,max=500"`
	Date        *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string  `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string  `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`
	Attendees   **int    `json:"attendees,omitempty"`
	Equipment   **string `json:"equipment,omitempty"`
}

type ReviewBookingInput struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
