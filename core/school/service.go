package school

import (
	"context"
	"errors"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"
	"github.com/rickar/cal/v2"
	"github.com/shopspring/decimal"

	"github.com/RaoulBonsso/GM/core"
	"github.com/RaoulBonsso/GM/core/format"
)

var (
	nowFunc = time.Now // mockable

	// errors
	ErrNotFound      = errors.New("enregistrement introuvable")
	ErrClassNotFound = errors.New("classe introuvable")
	errInvalidAmount = "le montant doit être supérieur à zéro"
	errInvalidDate   = "date invalide, format attendu AAAA-MM-JJ"
)

type (
	// Repository stores the school records. Get*, Update* return ErrNotFound for unknown ids.
	Repository interface {
		CreateStudent(ctx context.Context, s Student) (Student, error)
		QueryStudents(ctx context.Context) ([]Student, error)
		GetStudent(ctx context.Context, id int) (Student, error)
		UpdateStudent(ctx context.Context, s Student) (Student, error)
		DeleteStudents(ctx context.Context, ids ...int) error

		CreateTeacher(ctx context.Context, t Teacher) (Teacher, error)
		QueryTeachers(ctx context.Context) ([]Teacher, error)
		GetTeacher(ctx context.Context, id int) (Teacher, error)
		UpdateTeacher(ctx context.Context, t Teacher) (Teacher, error)
		DeleteTeachers(ctx context.Context, ids ...int) error

		CreateClass(ctx context.Context, c Class) (Class, error)
		QueryClasses(ctx context.Context) ([]Class, error)
		GetClass(ctx context.Context, id int) (Class, error)
		UpdateClass(ctx context.Context, c Class) (Class, error)
		DeleteClasses(ctx context.Context, ids ...int) error

		CreateExpense(ctx context.Context, e Expense) (Expense, error)
		QueryExpenses(ctx context.Context) ([]Expense, error)
		GetExpense(ctx context.Context, id int) (Expense, error)
		UpdateExpense(ctx context.Context, e Expense) (Expense, error)
		DeleteExpenses(ctx context.Context, ids ...int) error

		CreatePayment(ctx context.Context, p Payment) (Payment, error)
		QueryPayments(ctx context.Context) ([]Payment, error)
		GetPayment(ctx context.Context, id int) (Payment, error)
		UpdatePayment(ctx context.Context, p Payment) (Payment, error)
		DeletePayments(ctx context.Context, ids ...int) error
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		translator ut.Translator
		calendar   *cal.BusinessCalendar
	}
)

func NewService(repo Repository, validate *validator.Validate, translator ut.Translator, calendar *cal.BusinessCalendar) *Service {
	if calendar == nil {
		calendar = NewSchoolCalendar(true)
	}
	return &Service{
		repo:       repo,
		validate:   validate,
		translator: translator,
		calendar:   calendar,
	}
}

func (svc *Service) check(data interface{}) error {
	return core.ValidateStruct(svc.validate, svc.translator, data)
}

func checkAmount(d decimal.Decimal) error {
	if !d.IsPositive() {
		return core.NewValidationError(nil, core.FieldError{Field: "amount", Error: errInvalidAmount})
	}
	return nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := format.ParseISODate(s)
	if err != nil {
		return time.Time{}, core.NewValidationError(err, core.FieldError{Field: field, Error: errInvalidDate})
	}
	return t, nil
}

func orDefault(s, def string) string {
	if s = core.CleanString(s); s == "" {
		return def
	}
	return s
}

// Students

func (svc *Service) buildStudent(ctx context.Context, ns NewStudent) (Student, error) {
	if err := svc.check(ns); err != nil {
		return Student{}, err
	}
	class, err := svc.repo.GetClass(ctx, ns.ClassID)
	if err != nil {
		if errors.Is(pkgerrors.Cause(err), ErrNotFound) {
			return Student{}, core.NewValidationError(ErrClassNotFound, core.FieldError{Field: "classId", Error: ErrClassNotFound.Error()})
		}
		return Student{}, pkgerrors.Wrap(err, "getting class")
	}
	dob, err := parseDate("dateOfBirth", ns.DateOfBirth)
	if err != nil {
		return Student{}, err
	}
	regDate, err := parseDate("registrationDate", ns.RegistrationDate)
	if err != nil {
		return Student{}, err
	}
	if regDate.IsZero() {
		regDate = nowFunc().UTC().Truncate(24 * time.Hour)
	}
	return Student{
		FirstName:          core.CleanString(ns.FirstName),
		LastName:           core.CleanString(ns.LastName),
		ClassID:            class.ID,
		ClassName:          class.Name,
		Gender:             ns.Gender,
		DateOfBirth:        dob,
		BirthPlace:         core.CleanString(ns.BirthPlace),
		Nationality:        core.CleanString(ns.Nationality),
		Address:            core.CleanString(ns.Address),
		Email:              core.CleanString(ns.Email, true),
		Phone:              core.CleanString(ns.Phone),
		Status:             orDefault(ns.Status, StudentActive),
		RegistrationDate:   regDate,
		ParentName:         core.CleanString(ns.ParentName),
		ParentContact:      core.CleanString(ns.ParentContact),
		ParentEmail:        core.CleanString(ns.ParentEmail, true),
		ParentProfession:   core.CleanString(ns.ParentProfession),
		ParentRelationship: core.CleanString(ns.ParentRelationship),
		ParentAddress:      core.CleanString(ns.ParentAddress),
		TuitionFee:         ns.TuitionFee,
		PaymentMethod:      core.CleanString(ns.PaymentMethod),
	}, nil
}

func (svc *Service) CreateStudent(ctx context.Context, ns NewStudent) (Student, error) {
	s, err := svc.buildStudent(ctx, ns)
	if err != nil {
		return Student{}, err
	}
	now := nowFunc().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	return svc.repo.CreateStudent(ctx, s)
}

func (svc *Service) QueryStudents(ctx context.Context, f StudentFilter) ([]Student, error) {
	all, err := svc.repo.QueryStudents(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying students")
	}
	res := filter(all, f.Match)
	if err := sortBy(res, f.Orderings, studentOrderings); err != nil {
		return nil, err
	}
	return res, nil
}

func (svc *Service) GetStudent(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudent(ctx, id)
}

func (svc *Service) UpdateStudent(ctx context.Context, id int, ns NewStudent) (Student, error) {
	orig, err := svc.repo.GetStudent(ctx, id)
	if err != nil {
		return Student{}, err
	}
	s, err := svc.buildStudent(ctx, ns)
	if err != nil {
		return Student{}, err
	}
	s.ID = orig.ID
	s.CreatedAt = orig.CreatedAt
	s.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateStudent(ctx, s)
}

func (svc *Service) DeleteStudents(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteStudents(ctx, ids...)
}

// Teachers

func (svc *Service) buildTeacher(nt NewTeacher) (Teacher, error) {
	if err := svc.check(nt); err != nil {
		return Teacher{}, err
	}
	joined, err := parseDate("joiningDate", nt.JoiningDate)
	if err != nil {
		return Teacher{}, err
	}
	return Teacher{
		FirstName:     core.CleanString(nt.FirstName),
		LastName:      core.CleanString(nt.LastName),
		Subject:       core.CleanString(nt.Subject),
		Email:         core.CleanString(nt.Email, true),
		Phone:         core.CleanString(nt.Phone),
		Qualification: core.CleanString(nt.Qualification),
		JoiningDate:   joined,
		Status:        orDefault(nt.Status, TeacherActive),
	}, nil
}

func (svc *Service) CreateTeacher(ctx context.Context, nt NewTeacher) (Teacher, error) {
	t, err := svc.buildTeacher(nt)
	if err != nil {
		return Teacher{}, err
	}
	now := nowFunc().UTC()
	t.CreatedAt, t.UpdatedAt = now, now
	return svc.repo.CreateTeacher(ctx, t)
}

func (svc *Service) QueryTeachers(ctx context.Context, f TeacherFilter) ([]Teacher, error) {
	all, err := svc.repo.QueryTeachers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying teachers")
	}
	res := filter(all, f.Match)
	if err := sortBy(res, f.Orderings, teacherOrderings); err != nil {
		return nil, err
	}
	return res, nil
}

func (svc *Service) GetTeacher(ctx context.Context, id int) (Teacher, error) {
	return svc.repo.GetTeacher(ctx, id)
}

func (svc *Service) UpdateTeacher(ctx context.Context, id int, nt NewTeacher) (Teacher, error) {
	orig, err := svc.repo.GetTeacher(ctx, id)
	if err != nil {
		return Teacher{}, err
	}
	t, err := svc.buildTeacher(nt)
	if err != nil {
		return Teacher{}, err
	}
	t.ID = orig.ID
	t.CreatedAt = orig.CreatedAt
	t.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateTeacher(ctx, t)
}

func (svc *Service) DeleteTeachers(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteTeachers(ctx, ids...)
}

// Classes

func (svc *Service) buildClass(nc NewClass) (Class, error) {
	if err := svc.check(nc); err != nil {
		return Class{}, err
	}
	return Class{
		Name:         core.CleanString(nc.Name),
		Level:        core.CleanString(nc.Level),
		Teacher:      core.CleanString(nc.Teacher),
		Students:     nc.Boys + nc.Girls,
		Boys:         nc.Boys,
		Girls:        nc.Girls,
		AcademicYear: orDefault(nc.AcademicYear, format.AcademicYear(nowFunc())),
	}, nil
}

func (svc *Service) CreateClass(ctx context.Context, nc NewClass) (Class, error) {
	c, err := svc.buildClass(nc)
	if err != nil {
		return Class{}, err
	}
	now := nowFunc().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	return svc.repo.CreateClass(ctx, c)
}

func (svc *Service) QueryClasses(ctx context.Context, f ClassFilter) ([]Class, error) {
	all, err := svc.repo.QueryClasses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying classes")
	}
	res := filter(all, f.Match)
	if err := sortBy(res, f.Orderings, classOrderings); err != nil {
		return nil, err
	}
	return res, nil
}

func (svc *Service) GetClass(ctx context.Context, id int) (Class, error) {
	return svc.repo.GetClass(ctx, id)
}

func (svc *Service) UpdateClass(ctx context.Context, id int, nc NewClass) (Class, error) {
	orig, err := svc.repo.GetClass(ctx, id)
	if err != nil {
		return Class{}, err
	}
	c, err := svc.buildClass(nc)
	if err != nil {
		return Class{}, err
	}
	c.ID = orig.ID
	c.CreatedAt = orig.CreatedAt
	c.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateClass(ctx, c)
}

func (svc *Service) DeleteClasses(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteClasses(ctx, ids...)
}

// Expenses

func (svc *Service) buildExpense(ne NewExpense) (Expense, error) {
	if err := svc.check(ne); err != nil {
		return Expense{}, err
	}
	if err := checkAmount(ne.Amount); err != nil {
		return Expense{}, err
	}
	date, err := parseDate("date", ne.Date)
	if err != nil {
		return Expense{}, err
	}
	e := Expense{
		Title:         core.CleanString(ne.Title),
		Amount:        ne.Amount,
		Date:          date,
		Category:      core.CleanString(ne.Category),
		PaymentMethod: core.CleanString(ne.PaymentMethod),
		ApprovedBy:    core.CleanString(ne.ApprovedBy),
		Status:        orDefault(ne.Status, ExpensePending),
		Notes:         core.CleanString(ne.Notes),
	}
	if e.IsApproved() && e.ApprovedBy == "" {
		return Expense{}, core.NewValidationError(nil, core.FieldError{Field: "approvedBy", Error: "ce champ est obligatoire pour une dépense approuvée"})
	}
	return e, nil
}

func (svc *Service) CreateExpense(ctx context.Context, ne NewExpense) (Expense, error) {
	e, err := svc.buildExpense(ne)
	if err != nil {
		return Expense{}, err
	}
	now := nowFunc().UTC()
	e.CreatedAt, e.UpdatedAt = now, now
	return svc.repo.CreateExpense(ctx, e)
}

func (svc *Service) QueryExpenses(ctx context.Context, f ExpenseFilter) ([]Expense, error) {
	all, err := svc.repo.QueryExpenses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying expenses")
	}
	res := filter(all, f.Match)
	if err := sortBy(res, f.Orderings, expenseOrderings); err != nil {
		return nil, err
	}
	return res, nil
}

func (svc *Service) GetExpense(ctx context.Context, id int) (Expense, error) {
	return svc.repo.GetExpense(ctx, id)
}

func (svc *Service) UpdateExpense(ctx context.Context, id int, ne NewExpense) (Expense, error) {
	orig, err := svc.repo.GetExpense(ctx, id)
	if err != nil {
		return Expense{}, err
	}
	e, err := svc.buildExpense(ne)
	if err != nil {
		return Expense{}, err
	}
	e.ID = orig.ID
	e.CreatedAt = orig.CreatedAt
	e.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateExpense(ctx, e)
}

func (svc *Service) DeleteExpenses(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteExpenses(ctx, ids...)
}

// Payments

func (svc *Service) buildPayment(ctx context.Context, np NewPayment) (Payment, error) {
	if err := svc.check(np); err != nil {
		return Payment{}, err
	}
	if err := checkAmount(np.Amount); err != nil {
		return Payment{}, err
	}
	date, err := parseDate("date", np.Date)
	if err != nil {
		return Payment{}, err
	}
	student, err := svc.repo.GetStudent(ctx, np.StudentID)
	if err != nil {
		if errors.Is(pkgerrors.Cause(err), ErrNotFound) {
			return Payment{}, core.NewValidationError(err, core.FieldError{Field: "studentId", Error: "élève introuvable"})
		}
		return Payment{}, pkgerrors.Wrap(err, "getting student")
	}
	return Payment{
		StudentID:     student.ID,
		StudentName:   student.FullName(),
		ClassName:     student.ClassName,
		Amount:        np.Amount,
		Date:          date,
		Description:   core.CleanString(np.Description),
		PaymentMethod: core.CleanString(np.PaymentMethod),
		Status:        orDefault(np.Status, PaymentPending),
	}, nil
}

func (svc *Service) CreatePayment(ctx context.Context, np NewPayment) (Payment, error) {
	p, err := svc.buildPayment(ctx, np)
	if err != nil {
		return Payment{}, err
	}
	now := nowFunc().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	return svc.repo.CreatePayment(ctx, p)
}

func (svc *Service) QueryPayments(ctx context.Context, f PaymentFilter) ([]Payment, error) {
	all, err := svc.repo.QueryPayments(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying payments")
	}
	res := filter(all, f.Match)
	if err := sortBy(res, f.Orderings, paymentOrderings); err != nil {
		return nil, err
	}
	return res, nil
}

func (svc *Service) GetPayment(ctx context.Context, id int) (Payment, error) {
	return svc.repo.GetPayment(ctx, id)
}

func (svc *Service) UpdatePayment(ctx context.Context, id int, np NewPayment) (Payment, error) {
	orig, err := svc.repo.GetPayment(ctx, id)
	if err != nil {
		return Payment{}, err
	}
	p, err := svc.buildPayment(ctx, np)
	if err != nil {
		return Payment{}, err
	}
	p.ID = orig.ID
	p.CreatedAt = orig.CreatedAt
	p.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdatePayment(ctx, p)
}

func (svc *Service) DeletePayments(ctx context.Context, ids ...int) error {
	return svc.repo.DeletePayments(ctx, ids...)
}

// Stats computes the dashboard statistics over every record.
func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	students, err := svc.repo.QueryStudents(ctx)
	if err != nil {
		return Stats{}, pkgerrors.Wrap(err, "querying students")
	}
	teachers, err := svc.repo.QueryTeachers(ctx)
	if err != nil {
		return Stats{}, pkgerrors.Wrap(err, "querying teachers")
	}
	payments, err := svc.repo.QueryPayments(ctx)
	if err != nil {
		return Stats{}, pkgerrors.Wrap(err, "querying payments")
	}
	expenses, err := svc.repo.QueryExpenses(ctx)
	if err != nil {
		return Stats{}, pkgerrors.Wrap(err, "querying expenses")
	}
	return ComputeStats(students, teachers, payments, expenses, nowFunc(), svc.calendar), nil
}
