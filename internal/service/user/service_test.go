package user_test

import (
	"context"
	"testing"

	"campus-booking/internal/domain"
	"campus-booking/internal/service/audit"
	"campus-booking/internal/service/user"
	"campus-booking/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
	account := &domain.User{ID: userID, PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo, nil)

		userRepo.On("GetByID", ctx, userID).Return(account, nil).Once()
		userRepo.On("UpdatePassword", ctx, userID, mock.MatchedBy(func(newHash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password")) == nil
		})).Return(nil).Once()

		err := svc.ChangePassword(ctx, userID, domain.ChangePasswordInput{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Wrong Current Password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo, nil)

		userRepo.On("GetByID", ctx, userID).Return(account, nil).Once()

		err := svc.ChangePassword(ctx, userID, domain.ChangePasswordInput{
			CurrentPassword: "guess",
			NewPassword:     "new-password",
		})

		assert.ErrorIs(t, err, user.ErrWrongPassword)
		userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_AdminUpdate(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	t.Run("Role Change Is Audited", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		auditSvc := new(mocks.AuditService)
		svc := user.NewService(userRepo, auditSvc)

		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: "student"}, nil).Once()
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == "faculty"
		})).Return(nil).Once()
		auditSvc.On("Record", ctx, mock.MatchedBy(func(in audit.RecordInput) bool {
			return in.Action == "CHANGE_USER_ROLE" && in.UserID == adminID && in.EntityID == targetID
		})).Return(nil).Once()

		newRole := "faculty"
		updated, err := svc.AdminUpdate(ctx, adminID, targetID, domain.AdminUpdateUserInput{Role: &newRole})

		assert.NoError(t, err)
		assert.Equal(t, "faculty", updated.Role)
		auditSvc.AssertExpectations(t)
	})

	t.Run("Self Role Change Forbidden", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo, nil)

		newRole := "student"
		_, err := svc.AdminUpdate(ctx, adminID, adminID, domain.AdminUpdateUserInput{Role: &newRole})

		assert.ErrorIs(t, err, user.ErrCannotModifySelf)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Unchanged Role Is Not Audited", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		auditSvc := new(mocks.AuditService)
		svc := user.NewService(userRepo, auditSvc)

		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: "faculty"}, nil).Once()
		userRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

		sameRole := "faculty"
		_, err := svc.AdminUpdate(ctx, adminID, targetID, domain.AdminUpdateUserInput{Role: &sameRole})

		assert.NoError(t, err)
		auditSvc.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		auditSvc := new(mocks.AuditService)
		svc := user.NewService(userRepo, auditSvc)

		userRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Email: "gone@campus.edu"}, nil).Once()
		userRepo.On("Delete", ctx, targetID).Return(nil).Once()
		auditSvc.On("Record", ctx, mock.MatchedBy(func(in audit.RecordInput) bool {
			return in.Action == "DELETE_USER"
		})).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, adminID, targetID))
		userRepo.AssertExpectations(t)
		auditSvc.AssertExpectations(t)
	})

	t.Run("Self Deletion Forbidden", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo, nil)

		err := svc.Delete(ctx, adminID, adminID)

		assert.ErrorIs(t, err, user.ErrCannotModifySelf)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unknown User", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo, nil)

		userRepo.On("GetByID", ctx, targetID).Return(nil, nil).Once()

		err := svc.Delete(ctx, adminID, targetID)

		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Clears StudentID", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := user.NewService(userRepo, nil)

		sid := "S12345"
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, StudentID: &sid}, nil).Once()
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.StudentID == nil
		})).Return(nil).Once()

		var cleared *string
		updated, err := svc.UpdateProfile(ctx, userID, domain.UpdateProfileInput{StudentID: &cleared})

		assert.NoError(t, err)
		assert.Nil(t, updated.StudentID)
	})
}
