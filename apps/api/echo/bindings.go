package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/RaoulBonsso/GM/core/school"
)

var orderingParam = "ordering"

type Ordering struct {
	Orderings []school.Ordering
}

// Bind reads `?ordering=a,-b`: comma separated fields, descending when prefixed by "-".
func (ord *Ordering) Bind(ctx echo.Context) {
	data := ctx.QueryParams()
	if len(data) == 0 {
		return
	}
	val, ok := data[orderingParam]
	if !ok || len(val) == 0 || val[0] == "" {
		return
	}

	for _, field := range strings.Split(val[0], ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		ord.Orderings = append(ord.Orderings, school.Ordering{Field: field, Descending: descending})
	}
}

type (
	studentQuery struct {
		Search  string `query:"search"`
		ClassID int    `query:"class"`
		Status  string `query:"status"`
	}

	teacherQuery struct {
		Search  string `query:"search"`
		Status  string `query:"status"`
		Subject string `query:"subject"`
	}

	classQuery struct {
		Search string `query:"search"`
		Level  string `query:"level"`
	}

	expenseQuery struct {
		Search   string `query:"search"`
		Category string `query:"category"`
		Status   string `query:"status"`
	}

	paymentQuery struct {
		Search    string `query:"search"`
		Status    string `query:"status"`
		StudentID int    `query:"student"`
	}

	exportQuery struct {
		Format string `query:"format"`
		Title  string `query:"title"`
	}

	DestroyMultipleRequest struct {
		IDs []int `query:"id"`
	}
)

func bindOrderings(ctx echo.Context) []school.Ordering {
	ordering := new(Ordering)
	ordering.Bind(ctx)
	return ordering.Orderings
}

func bindStudentFilter(ctx echo.Context) (school.StudentFilter, error) {
	var q studentQuery
	if err := ctx.Bind(&q); err != nil {
		return school.StudentFilter{}, errors.Wrap(err, "binding to studentQuery")
	}
	return school.StudentFilter{
		Search:    q.Search,
		ClassID:   q.ClassID,
		Status:    q.Status,
		Orderings: bindOrderings(ctx),
	}, nil
}

func bindTeacherFilter(ctx echo.Context) (school.TeacherFilter, error) {
	var q teacherQuery
	if err := ctx.Bind(&q); err != nil {
		return school.TeacherFilter{}, errors.Wrap(err, "binding to teacherQuery")
	}
	return school.TeacherFilter{
		Search:    q.Search,
		Status:    q.Status,
		Subject:   q.Subject,
		Orderings: bindOrderings(ctx),
	}, nil
}

func bindClassFilter(ctx echo.Context) (school.ClassFilter, error) {
	var q classQuery
	if err := ctx.Bind(&q); err != nil {
		return school.ClassFilter{}, errors.Wrap(err, "binding to classQuery")
	}
	return school.ClassFilter{
		Search:    q.Search,
		Level:     q.Level,
		Orderings: bindOrderings(ctx),
	}, nil
}

func bindExpenseFilter(ctx echo.Context) (school.ExpenseFilter, error) {
	var q expenseQuery
	if err := ctx.Bind(&q); err != nil {
		return school.ExpenseFilter{}, errors.Wrap(err, "binding to expenseQuery")
	}
	return school.ExpenseFilter{
		Search:    q.Search,
		Category:  q.Category,
		Status:    q.Status,
		Orderings: bindOrderings(ctx),
	}, nil
}

func bindPaymentFilter(ctx echo.Context) (school.PaymentFilter, error) {
	var q paymentQuery
	if err := ctx.Bind(&q); err != nil {
		return school.PaymentFilter{}, errors.Wrap(err, "binding to paymentQuery")
	}
	return school.PaymentFilter{
		Search:    q.Search,
		Status:    q.Status,
		StudentID: q.StudentID,
		Orderings: bindOrderings(ctx),
	}, nil
}
