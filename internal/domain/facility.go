package domain

import (
	"time"

	"github.com/google/uuid"
)

type Facility struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description *string        `json:"description,omitempty" db:"description"`
	Location    *string        `json:"location,omitempty" db:"location"`
	Capacity    *int           `json:"capacity,omitempty" db:"capacity"`
	Amenities   *string        `json:"amenities,omitempty" db:"amenities"`
	Status      FacilityStatus `json:"status" db:"status"`
	ImageURL    *string        `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

type FacilityStatus string

const (
	FacilityAvailable   FacilityStatus = "available"
	FacilityMaintenance FacilityStatus = "maintenance"
	FacilityClosed      FacilityStatus = "closed"
)

func (s FacilityStatus) IsValid() bool {
	switch s {
	case FacilityAvailable, FacilityMaintenance, FacilityClosed:
		return true
	default:
		return false
	}
}

type CreateFacilityInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=300"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Amenities   *string `json:"amenities,omitempty" validate:"omitempty,max=2000"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=available maintenance closed"`
}

type UpdateFacilityInput struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Description **string `json:"description,omitempty"`
	Location    **string `json:"location,omitempty"`
	Capacity    **int    `json:"capacity,omitempty"`
	Amenities   **string `json:"amenities,omitempty"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=available maintenance closed"`
}
