package impl

import (
	"context"
	"testing"

	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	"inventario/internal/domain/service"
	mockRepo "inventario/internal/mocks/repository"
	mockSvc "inventario/internal/mocks/service"
	"inventario/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "seller@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleSeller,
		Active:       true,
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, user.Role).Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "seller@example.com", PasswordHash: "hashed", Active: true}
	input := &usecase.LoginInput{Email: user.Email, Password: "wrong"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "off@example.com", PasswordHash: "hashed", Active: false}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	// The password is still verified before the active flag is consulted.
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, Active: true}
	claims := &service.Claims{UserID: user.ID, Role: user.Role, Type: "refresh"}

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, user.Role).Return("new-access", "unused-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_DeactivatedUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleSeller, Active: false}
	claims := &service.Claims{UserID: user.ID, Role: user.Role, Type: "refresh"}

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Actor:    newAdminActor(),
		Name:     "New Seller",
		Cedula:   "0923456789",
		Email:    "new@example.com",
		Password: "Password123!",
		Role:     entity.RoleSeller,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().FindByCedula(ctx, input.Cedula).Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.True(t, output.User.Active)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_RegisterUser_RequiresAdmin(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterUserInput{
		Actor:    newSellerActor(),
		Name:     "Intruder",
		Email:    "x@example.com",
		Password: "Password123!",
		Role:     entity.RoleSeller,
	}

	output, err := fx.service.RegisterUser(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_RegisterUser_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterUserInput{
		Actor:    newAdminActor(),
		Name:     "Odd Role",
		Email:    "odd@example.com",
		Password: "Password123!",
		Role:     entity.Role("superuser"),
	}

	output, err := fx.service.RegisterUser(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Actor:    newAdminActor(),
		Name:     "Duplicate",
		Email:    "taken@example.com",
		Password: "Password123!",
		Role:     entity.RoleSeller,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			existing := &entity.User{ID: uuid.New(), Email: input.Email}
			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrEmailTaken.WrapMessage("registration rejected"))

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_ListUsers_RequiresAdmin(t *testing.T) {
	fx := createTestUserService(t)

	users, err := fx.service.ListUsers(context.Background(), newSellerActor())

	assert.Error(t, err)
	assert.Nil(t, users)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_ListUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.userRepo.EXPECT().List(ctx).Return(expected, nil)

	users, err := fx.service.ListUsers(ctx, newAdminActor())

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := newSellerActor()
	input := &usecase.UpdateProfileInput{
		Actor:   actor,
		Name:    "Renamed",
		Phone:   "0999999999",
		Address: "New Street 1",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			user := &entity.User{ID: actor.UserID, Name: "Old Name", Phone: "0911111111", Active: true}
			mockUserRepo.EXPECT().FindByID(ctx, actor.UserID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "0999999999", updated.Phone)
	assert.Equal(t, "New Street 1", updated.Address)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := newSellerActor()
	user := &entity.User{ID: actor.UserID, PasswordHash: "old_hash", Active: true}
	input := &usecase.ChangePasswordInput{Actor: actor, CurrentPassword: "old", NewPassword: "New123456!"}

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.CurrentPassword, "old_hash").Return(true)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err := fx.service.ChangePassword(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new_hash", user.PasswordHash)
}

func TestUserService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := newSellerActor()
	user := &entity.User{ID: actor.UserID, PasswordHash: "old_hash", Active: true}
	input := &usecase.ChangePasswordInput{Actor: actor, CurrentPassword: "wrong", NewPassword: "New123456!"}

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.CurrentPassword, "old_hash").Return(false)

	err := fx.service.ChangePassword(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_SetUserActive_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := newAdminActor()
	targetID := uuid.New()
	input := &usecase.SetUserActiveInput{Actor: actor, UserID: targetID, Active: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			target := &entity.User{ID: targetID, Active: true}
			mockUserRepo.EXPECT().FindByID(ctx, targetID).Return(target, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.False(t, user.Active)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.SetUserActive(ctx, input)

	require.NoError(t, err)
}

func TestUserService_SetUserActive_SelfDeactivationRejected(t *testing.T) {
	fx := createTestUserService(t)

	actor := newAdminActor()
	input := &usecase.SetUserActiveInput{Actor: actor, UserID: actor.UserID, Active: false}

	err := fx.service.SetUserActive(context.Background(), input)

	assert.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_SetUserActive_RequiresAdmin(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.SetUserActiveInput{Actor: newSellerActor(), UserID: uuid.New(), Active: false}

	err := fx.service.SetUserActive(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
