// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"inventario/config"
	deliverycontext "inventario/internal/delivery/context"
	"inventario/internal/domain/entity"
	domainerrors "inventario/internal/domain/errors"
	"inventario/internal/domain/repository"
	"inventario/internal/domain/service"
	"inventario/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues a token pair. Inactive accounts are
// rejected even with a correct password.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check password before the active flag so both failures cost a bcrypt
	// comparison and timing does not reveal which one tripped.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	if !user.Active {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrAccountInactive.WrapMessage("login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken issues a new access token from a valid refresh token.
// The refresh token itself remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("refresh token user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user for token refresh")
	}

	if !user.Active {
		return nil, domainerrors.ErrAccountInactive.WrapMessage("token refresh rejected")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// RegisterUser creates a new account. Administrators only.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	if !input.Actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators may register users")
	}

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be admin or seller").
			WrapMessage("invalid role")
	}

	srv.log(ctx).Info("Registering user", slog.String("email", input.Email), slog.Any("role", input.Role))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Cedula:       input.Cedula,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		Phone:        input.Phone,
		Address:      input.Address,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("registration rejected")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		if input.Cedula != "" {
			if _, findErr := userRepo.FindByCedula(ctx, input.Cedula); findErr == nil {
				return domainerrors.ErrCedulaTaken.WrapMessage("registration rejected")
			} else if !errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(findErr, "failed to check cedula uniqueness")
			}
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("User registered", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// ListUsers returns every account. Administrators only.
func (srv *userService) ListUsers(ctx context.Context, actor entity.Actor) ([]*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only administrators may list users")
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetProfile returns the acting user's own account.
func (srv *userService) GetProfile(ctx context.Context, actor entity.Actor) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies the acting user's own profile changes.
func (srv *userService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, input.Actor.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
			}

			return errors.Wrap(findErr, "failed to load user for profile update")
		}

		if input.Name != "" {
			user.Name = input.Name
		}
		user.Phone = input.Phone
		user.Address = input.Address

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.Any("userID", input.Actor.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// ChangePassword replaces the acting user's password after verifying the
// current one.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.Actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("password change failed")
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Any("userID", user.ID))

		return domainerrors.ErrInvalidCredentials.WrapMessage("current password mismatch")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}

// SetUserActive enables or disables another account. Administrators only,
// and never against the acting administrator's own account.
func (srv *userService) SetUserActive(ctx context.Context, input *usecase.SetUserActiveInput) error {
	if !input.Actor.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("only administrators may toggle accounts")
	}

	if input.UserID == input.Actor.UserID {
		return domainerrors.ErrValidationFailed.WithDetails("administrators cannot deactivate their own account").
			WrapMessage("self-deactivation rejected")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("account toggle failed")
			}

			return errors.Wrap(findErr, "failed to load user for account toggle")
		}

		user.Active = input.Active

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to toggle account", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account toggle transaction")
	}

	srv.log(ctx).Info("Account toggled", slog.Any("userID", input.UserID), slog.Bool("active", input.Active))

	return nil
}
