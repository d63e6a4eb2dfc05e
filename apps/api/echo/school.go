package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/RaoulBonsso/GM/core"
	"github.com/RaoulBonsso/GM/core/report"
	"github.com/RaoulBonsso/GM/core/school"
)

type schoolApi struct {
	svc *school.Service
}

func registerSchoolAPI(g *echo.Group, svc *school.Service, reports *report.Generator, logger core.Logger) {
	api := schoolApi{svc: svc}

	students := &resource[school.Student, school.NewStudent, school.StudentFilter]{
		name:       "students",
		createFn:   svc.CreateStudent,
		queryFn:    svc.QueryStudents,
		getFn:      svc.GetStudent,
		updateFn:   svc.UpdateStudent,
		deleteFn:   svc.DeleteStudents,
		bindFilter: bindStudentFilter,
		listPDF:    reports.StudentList,
		listSheet:  reports.StudentSheet,
		detailPDF:  reports.StudentDetail,
		logger:     logger,
	}
	teachers := &resource[school.Teacher, school.NewTeacher, school.TeacherFilter]{
		name:       "teachers",
		createFn:   svc.CreateTeacher,
		queryFn:    svc.QueryTeachers,
		getFn:      svc.GetTeacher,
		updateFn:   svc.UpdateTeacher,
		deleteFn:   svc.DeleteTeachers,
		bindFilter: bindTeacherFilter,
		listPDF:    reports.TeacherList,
		listSheet:  reports.TeacherSheet,
		detailPDF:  reports.TeacherDetail,
		logger:     logger,
	}
	classes := &resource[school.Class, school.NewClass, school.ClassFilter]{
		name:       "classes",
		createFn:   svc.CreateClass,
		queryFn:    svc.QueryClasses,
		getFn:      svc.GetClass,
		updateFn:   svc.UpdateClass,
		deleteFn:   svc.DeleteClasses,
		bindFilter: bindClassFilter,
		logger:     logger,
	}
	expenses := &resource[school.Expense, school.NewExpense, school.ExpenseFilter]{
		name:       "expenses",
		createFn:   svc.CreateExpense,
		queryFn:    svc.QueryExpenses,
		getFn:      svc.GetExpense,
		updateFn:   svc.UpdateExpense,
		deleteFn:   svc.DeleteExpenses,
		bindFilter: bindExpenseFilter,
		listPDF:    reports.ExpenseList,
		listSheet:  reports.ExpenseSheet,
		detailPDF:  reports.ExpenseDetail,
		logger:     logger,
	}
	payments := &resource[school.Payment, school.NewPayment, school.PaymentFilter]{
		name:       "payments",
		createFn:   svc.CreatePayment,
		queryFn:    svc.QueryPayments,
		getFn:      svc.GetPayment,
		updateFn:   svc.UpdatePayment,
		deleteFn:   svc.DeletePayments,
		bindFilter: bindPaymentFilter,
		listPDF:    reports.PaymentList,
		listSheet:  reports.PaymentSheet,
		detailPDF:  reports.PaymentDetail,
		logger:     logger,
	}

	students.register(g)
	teachers.register(g)
	classes.register(g)
	expenses.register(g)
	payments.register(g)

	g.GET("/dashboard/stats", api.stats)
}

func (api *schoolApi) stats(ctx echo.Context) error {
	st, err := api.svc.Stats(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "computing dashboard statistics")
	}
	return ctx.JSON(http.StatusOK, st)
}
