package echoapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/RaoulBonsso/GM/core"
	"github.com/RaoulBonsso/GM/core/report"
)

const (
	formatPDF  = "pdf"
	formatXLSX = "xlsx"
)

func errUnknownFormat(format string) error {
	return core.NewValidationError(
		errors.Errorf("unknown export format %q", format),
		core.FieldError{Field: "format", Error: "format inconnu: " + format},
	)
}

func (res *resource[T, N, F]) exportList(ctx echo.Context) error {
	var q exportQuery
	if err := ctx.Bind(&q); err != nil {
		return errors.Wrap(err, "binding to exportQuery")
	}

	render := res.listPDF
	switch strings.ToLower(q.Format) {
	case "", formatPDF:
	case formatXLSX:
		render = res.listSheet
	default:
		return errUnknownFormat(q.Format)
	}

	filter, err := res.bindFilter(ctx)
	if err != nil {
		return err
	}
	objs, err := res.queryFn(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrapf(err, "querying %s", res.name)
	}

	artifact, err := render(objs, core.CleanString(q.Title))
	if err != nil {
		return errors.Wrapf(err, "exporting %s", res.name)
	}
	return res.attachment(ctx, len(objs), artifact)
}

func (res *resource[T, N, F]) exportDetail(ctx echo.Context) error {
	obj, _, err := contextObject[T](ctx)
	if err != nil {
		return err
	}

	artifact, err := res.detailPDF(obj)
	if err != nil {
		return errors.Wrapf(err, "exporting %s detail", res.name)
	}
	return res.attachment(ctx, 1, artifact)
}

func (res *resource[T, N, F]) attachment(ctx echo.Context, count int, a report.Artifact) error {
	res.logger.Info("report generated", map[string]interface{}{
		"kind":    res.name,
		"records": count,
		"file":    a.Filename,
	})
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", a.Filename))
	return ctx.Blob(http.StatusOK, a.ContentType, a.Content)
}
