// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "inventario/internal/delivery/context"
	"inventario/internal/delivery/http/response"
	"inventario/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorFrom returns the acting user placed on the context by the
// authentication middleware.
func actorFrom(c echo.Context) (entity.Actor, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return entity.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "acting user missing from request")
	}

	return actor, nil
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" path parameter")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
