package auth_test

import (
	"context"
	"testing"
	"time"

	"campus-booking/internal/config"
	"campus-booking/internal/domain"
	"campus-booking/internal/service/auth"
	"campus-booking/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := domain.RegisterInput{
		Email:           "alice@campus.edu",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		FirstName:       "Alice",
		LastName:        "Nguyen",
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, nil, testConfig())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email && u.Role == string(domain.RoleStudent) && u.PasswordHash != input.Password
		})).Return(nil).Once()

		user, token, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, token)
		assert.Equal(t, string(domain.RoleStudent), user.Role)

		// The issued token must round-trip through validation with the
		// caller identity intact.
		claims, err := svc.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, user.Role, claims.Role)

		userRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, nil, testConfig())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil).Once()

		user, token, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, auth.ErrEmailExists)
		assert.Nil(t, user)
		assert.Empty(t, token)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	user := &domain.User{
		Email:        "alice@campus.edu",
		PasswordHash: string(hash),
		Role:         "student",
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, nil, testConfig())

		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		got, token, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "supersecret"})

		assert.NoError(t, err)
		assert.Equal(t, user, got)
		assert.NotEmpty(t, token)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, nil, testConfig())

		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "wrong"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, nil, testConfig())

		userRepo.On("GetByEmail", ctx, "nobody@campus.edu").Return(nil, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "nobody@campus.edu", Password: "supersecret"})

		// Unknown email and wrong password are indistinguishable to the caller.
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	t.Run("Garbage Token", func(t *testing.T) {
		svc := auth.NewService(new(mocks.UserRepository), nil, testConfig())

		claims, err := svc.ValidateToken("not-a-jwt")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		ctx := context.Background()
		userRepo := new(mocks.UserRepository)
		issuer := auth.NewService(userRepo, nil, testConfig())

		userRepo.On("ExistsByEmail", ctx, mock.Anything).Return(false, nil)
		userRepo.On("Create", ctx, mock.Anything).Return(nil)

		_, token, err := issuer.Register(ctx, domain.RegisterInput{
			Email:           "bob@campus.edu",
			Password:        "supersecret",
			ConfirmPassword: "supersecret",
			FirstName:       "Bob",
			LastName:        "Tan",
		})
		assert.NoError(t, err)

		otherCfg := testConfig()
		otherCfg.JWTSecret = "different-secret"
		verifier := auth.NewService(userRepo, nil, otherCfg)

		claims, err := verifier.ValidateToken(token)

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Expired Token", func(t *testing.T) {
		ctx := context.Background()
		userRepo := new(mocks.UserRepository)

		cfg := testConfig()
		cfg.JWTExpiry = -time.Minute
		svc := auth.NewService(userRepo, nil, cfg)

		userRepo.On("ExistsByEmail", ctx, mock.Anything).Return(false, nil)
		userRepo.On("Create", ctx, mock.Anything).Return(nil)

		_, token, err := svc.Register(ctx, domain.RegisterInput{
			Email:           "carol@campus.edu",
			Password:        "supersecret",
			ConfirmPassword: "supersecret",
			FirstName:       "Carol",
			LastName:        "Lim",
		})
		assert.NoError(t, err)

		claims, err := svc.ValidateToken(token)

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}
