package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"firstName" db:"first_name"`
	LastName     string     `json:"lastName" db:"last_name"`
	StudentID    *string    `json:"studentId,omitempty" db:"student_id"`
	Role         string     `json:"role" db:"role"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
}

type RegisterInput struct {
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string  `json:"firstName" validate:"required,min=2"`
	LastName        string  `json:"lastName" validate:"required,min=2"`
	StudentID       *string `json:"studentId,omitempty" validate:"omitempty,max=30"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	FirstName *string  `json:"firstName,omitempty" validate:"omitempty,min=2"`
	LastName  *string  `json:"lastName,omitempty" validate:"omitempty,min=2"`
	StudentID **string `json:"studentId,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type AdminUpdateUserInput struct {
	FirstName *string  `json:"firstName,omitempty" validate:"omitempty,min=2"`
	LastName  *string  `json:"lastName,omitempty" validate:"omitempty,min=2"`
	StudentID **string `json:"studentId,omitempty"`
	Role      *string  `json:"role,omitempty" validate:"omitempty,oneof=student faculty admin"`
}

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleFaculty UserRole = "faculty"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	default:
		return false
	}
}

// HasRole reports whether the user's role satisfies the required one.
// admin satisfies every check; faculty satisfies faculty and student.
func (u *User) HasRole(requiredRole string) bool {
	switch requiredRole {
	case "admin":
		return u.Role == "admin"
	case "faculty":
		return u.Role == "faculty" || u.Role == "admin"
	case "student":
		return u.Role == "student" || u.Role == "faculty" || u.Role == "admin"
	default:
		return false
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}
