package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inventario/internal/delivery/http/response"
	"inventario/internal/domain/entity"
	"inventario/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type registerUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Cedula   string `json:"cedula"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// userView is the JSON projection of a user account. The password hash
// never leaves the server.
type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cedula    string    `json:"cedula,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID.String(),
		Name:      user.Name,
		Cedula:    user.Cedula,
		Email:     user.Email,
		Role:      user.Role.String(),
		Phone:     user.Phone,
		Address:   user.Address,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
		"user":         toUserView(output.User),
	}, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// RegisterUser handles account creation by an administrator.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Actor:    actor,
		Name:     req.Name,
		Cedula:   req.Cedula,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "User registered successfully")
}

// ListUsers returns every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	users, err := h.uc.ListUsers(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// GetProfile returns the acting user's own account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// UpdateProfile applies the acting user's own profile changes.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		Actor:   actor,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Profile updated successfully")
}

// ChangePassword replaces the acting user's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		Actor:           actor,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// SetUserActive enables or disables another account.
func (h *UserHandler) SetUserActive(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account toggle input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.SetUserActive(c.Request().Context(), &usecase.SetUserActiveInput{
		Actor:  actor,
		UserID: userID,
		Active: *req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account updated successfully")
}
