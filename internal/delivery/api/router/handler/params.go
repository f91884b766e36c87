package handler

import (
	"crm/internal/delivery/api/validator"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentActor returns the actor stored by the auth middleware.
func currentActor(c echo.Context) (entity.Actor, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return entity.Actor{}, domainerrors.ErrUnauthorized.WithDetails("actor missing from request context")
	}

	return actor, nil
}

// pathUUID parses a required uuid path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, invalidParam(name, "uuid")
	}

	return id, nil
}

// queryUUID parses a required uuid query parameter.
func queryUUID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, invalidParam(name, "required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidParam(name, "uuid")
	}

	return id, nil
}

// optionalQueryUUID parses a uuid query parameter that may be absent.
func optionalQueryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	if c.QueryParam(name) == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}
	id, err := queryUUID(c, name)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func invalidParam(name, rule string) error {
	return domainerrors.ErrValidationFailed.WithDetails([]validator.FieldError{{Field: name, Rule: rule}})
}
