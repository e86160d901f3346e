package middleware

import (
	"strings"

	deliverycontext "inventario/internal/delivery/context"
	"inventario/internal/delivery/http/response"
	"inventario/internal/domain/entity"
	"inventario/internal/domain/repository"
	"inventario/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Authenticate resolves the acting user from the access token and loads their
// current account state, so a deactivated account is locked out immediately
// rather than when its token expires.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and stores the acting user on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Unauthorized(c, "INVALID_TOKEN", "Token user no longer exists")
			}

			return errors.Wrap(err, "failed to load acting user")
		}

		if !user.Active {
			return response.Unauthorized(c, "ACCOUNT_INACTIVE", "Account is inactive, contact an administrator")
		}

		deliverycontext.SetActor(c, user.Actor())

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the acting user's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: acting user missing")
			}

			if actor.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
