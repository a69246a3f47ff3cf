package user

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"campus-booking/internal/domain"
	"campus-booking/internal/repository"
	"campus-booking/internal/service/audit"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrCannotModifySelf = errors.New("administrators cannot modify their own account here")
)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, input domain.ChangePasswordInput) error
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error)
	AdminUpdate(ctx context.Context, adminID, id uuid.UUID, input domain.AdminUpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, adminID, id uuid.UUID) error
}

type service struct {
	userRepo repository.UserRepository
	auditSvc audit.Service
}

func NewService(userRepo repository.UserRepository, auditSvc audit.Service) Service {
	return &service{
		userRepo: userRepo,
		auditSvc: auditSvc,
	}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.StudentID != nil {
		user.StudentID = *input.StudentID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) ChangePassword(ctx context.Context, id uuid.UUID, input domain.ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, id, string(hashed))
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error) {
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.User]{}, err
	}

	return domain.NewPaginatedResponse(users, params.Page, params.PageSize, total), nil
}

// AdminUpdate lets an administrator edit another user, including the role.
// Admins cannot change their own role through this path.
func (s *service) AdminUpdate(ctx context.Context, adminID, id uuid.UUID, input domain.AdminUpdateUserInput) (*domain.User, error) {
	if input.Role != nil && adminID == id {
		return nil, ErrCannotModifySelf
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldRole := user.Role

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.StudentID != nil {
		user.StudentID = *input.StudentID
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if input.Role != nil && oldRole != user.Role {
		s.record(ctx, adminID, "CHANGE_USER_ROLE", id,
			map[string]string{"role": oldRole},
			map[string]string{"role": user.Role})
	}

	return user, nil
}

// Delete soft-deletes a user. Self-deletion is forbidden.
func (s *service) Delete(ctx context.Context, adminID, id uuid.UUID) error {
	if adminID == id {
		return ErrCannotModifySelf
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, adminID, "DELETE_USER", id, map[string]string{"email": user.Email}, nil)
	return nil
}

func (s *service) record(ctx context.Context, actorID uuid.UUID, action string, entityID uuid.UUID, oldValue, newValue interface{}) {
	if s.auditSvc == nil {
		return
	}

	err := s.auditSvc.Record(ctx, audit.RecordInput{
		UserID:     actorID,
		Action:     action,
		EntityType: "USER",
		EntityID:   entityID,
		OldValue:   oldValue,
		NewValue:   newValue,
	})
	if err != nil {
		log.Printf("Failed to write audit log for user %s: %v", entityID, err)
	}
}
