package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/RaoulBonsso/GM/core"
	"github.com/RaoulBonsso/GM/core/report"
)

// resource serves the CRUD endpoints of one kind of school record, T, created
// and updated from N and listed with the filter F.
type resource[T, N, F any] struct {
	name       string
	createFn   func(context.Context, N) (T, error)
	queryFn    func(context.Context, F) ([]T, error)
	getFn      func(context.Context, int) (T, error)
	updateFn   func(context.Context, int, N) (T, error)
	deleteFn   func(context.Context, ...int) error
	bindFilter func(echo.Context) (F, error)

	// nil when the kind has no document
	listPDF   func([]T, string) (report.Artifact, error)
	listSheet func([]T, string) (report.Artifact, error)
	detailPDF func(T) (report.Artifact, error)

	logger core.Logger
}

func (res *resource[T, N, F]) register(g *echo.Group) {
	rg := g.Group("/" + res.name)
	rg.GET("", res.query)
	rg.POST("", res.create)
	rg.DELETE("", res.destroyMultiple)
	if res.listPDF != nil {
		rg.GET("/export", res.exportList)
	}

	// detail endpoints
	dg := rg.Group("/:id", objectMiddleware(res.getFn))
	dg.GET("", res.retrieve)
	dg.PUT("", res.update)
	dg.DELETE("", res.destroy)
	if res.detailPDF != nil {
		dg.GET("/export", res.exportDetail)
	}
}

// Handlers

func (res *resource[T, N, F]) create(ctx echo.Context) error {
	var data N
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrapf(err, "binding new %s", res.name)
	}

	obj, err := res.createFn(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrapf(err, "creating %s", res.name)
	}
	return ctx.JSON(http.StatusCreated, obj)
}

func (res *resource[T, N, F]) query(ctx echo.Context) error {
	filter, err := res.bindFilter(ctx)
	if err != nil {
		return ctx.JSON(http.StatusOK, []T{})
	}

	objs, err := res.queryFn(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrapf(err, "querying %s", res.name)
	}
	if objs == nil {
		objs = []T{}
	}
	return ctx.JSON(http.StatusOK, objs)
}

func (res *resource[T, N, F]) retrieve(ctx echo.Context) error {
	obj, _, err := contextObject[T](ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, obj)
}

func (res *resource[T, N, F]) update(ctx echo.Context) error {
	_, id, err := contextObject[T](ctx)
	if err != nil {
		return err
	}

	var data N
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrapf(err, "binding %s update", res.name)
	}

	obj, err := res.updateFn(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrapf(err, "updating %s", res.name)
	}
	return ctx.JSON(http.StatusOK, obj)
}

func (res *resource[T, N, F]) destroy(ctx echo.Context) error {
	_, id, err := contextObject[T](ctx)
	if err != nil {
		return err
	}
	if err := res.deleteFn(ctx.Request().Context(), id); err != nil {
		return errors.Wrapf(err, "deleting %s", res.name)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (res *resource[T, N, F]) destroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if query.IDs == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	if err := res.deleteFn(ctx.Request().Context(), query.IDs...); err != nil {
		return errors.Wrapf(err, "deleting %s", res.name)
	}
	return ctx.NoContent(http.StatusNoContent)
}
