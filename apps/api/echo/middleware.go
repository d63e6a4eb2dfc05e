package echoapi

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/RaoulBonsso/GM/core/school"
)

const (
	objectKey   = "object"
	objectIDKey = "objectID"
)

// objectMiddleware loads the record matching the `:id` path param into the context.
func objectMiddleware[T any](get func(context.Context, int) (T, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := strconv.Atoi(ctx.Param("id"))
			if err != nil || id <= 0 {
				return errHttpNotFound
			}

			obj, err := get(ctx.Request().Context(), id)
			if err != nil {
				if errors.Cause(err) == school.ErrNotFound {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding object by ID")
			}
			ctx.Set(objectKey, obj)
			ctx.Set(objectIDKey, id)
			return next(ctx)
		}
	}
}

func contextObject[T any](ctx echo.Context) (T, int, error) {
	obj, ok := ctx.Get(objectKey).(T)
	if !ok {
		return obj, 0, errors.Wrap(errObjNotFoundInCtx, "retrieving object from context")
	}
	id, _ := ctx.Get(objectIDKey).(int)
	return obj, id, nil
}
