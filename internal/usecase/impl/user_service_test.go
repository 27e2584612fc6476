package impl

import (
	"context"
	"testing"

	"thikana/internal/domain/entity"
	domainerrors "thikana/internal/domain/errors"
	"thikana/internal/domain/repository"
	mockRepo "thikana/internal/mocks/repository"
	mockSvc "thikana/internal/mocks/service"
	"thikana/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return svc, userRepo, hasher, tokenSvc
}

func TestUserService_Register(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t)

	hasher.On("Hash", "s3cret").Return("hashed", nil)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "rahim@example.com" &&
			user.Role == entity.RoleCustomer &&
			user.PasswordHash == "hashed"
	})).Return(nil)

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "  Rahim@Example.com ",
		Name:     "Rahim",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", user.Email)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t)

	hasher.On("Hash", "s3cret").Return("hashed", nil)
	userRepo.On("CreateUser", mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateUser)

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "rahim@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, user)
}

func TestUserService_Register_PrivilegedRoleRejected(t *testing.T) {
	svc, _, _, _ := newUserService(t)

	user, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "rahim@example.com",
		Password: "s3cret",
		Role:     entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
	assert.Nil(t, user)
}

func TestUserService_Login(t *testing.T) {
	svc, userRepo, hasher, tokenSvc := newUserService(t)

	userID := uuid.New()
	userRepo.On("FindUserByEmail", mock.Anything, "rahim@example.com").
		Return(&entity.User{ID: userID, Email: "rahim@example.com", Role: entity.RoleCustomer, PasswordHash: "hashed"}, nil)
	hasher.On("Check", "s3cret", "hashed").Return(true)
	tokenSvc.On("GenerateTokens", userID, []string{"customer"}).
		Return("access", "refresh", nil)

	tokens, err := svc.Login(context.Background(), "Rahim@Example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, hasher, _ := newUserService(t)

	userRepo.On("FindUserByEmail", mock.Anything, "rahim@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
	hasher.On("Check", "wrong", "hashed").Return(false)

	tokens, err := svc.Login(context.Background(), "rahim@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, tokens)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _ := newUserService(t)

	userRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	// Unknown email and wrong password look identical to the caller.
	tokens, err := svc.Login(context.Background(), "ghost@example.com", "s3cret")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, tokens)
}

func TestUserService_GetProfile(t *testing.T) {
	svc, userRepo, _, _ := newUserService(t)

	userID := uuid.New()
	userRepo.On("FindUserByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Name: "Rahim"}, nil)

	user, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Rahim", user.Name)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, userRepo, _, _ := newUserService(t)

	userID := uuid.New()
	userRepo.On("FindUserByID", mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetProfile(context.Background(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}
