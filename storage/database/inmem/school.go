package inmemdb

import (
	"context"

	"github.com/RaoulBonsso/GM/core/school"
)

type schoolRepository struct {
	db *DB
}

var _ school.Repository = (*schoolRepository)(nil)

func NewSchoolRepository(db *DB) school.Repository {
	return &schoolRepository{db: db}
}

func (repo *schoolRepository) CreateStudent(_ context.Context, s school.Student) (school.Student, error) {
	return repo.db.student.create(s), nil
}

func (repo *schoolRepository) QueryStudents(_ context.Context) ([]school.Student, error) {
	return repo.db.student.all(), nil
}

func (repo *schoolRepository) GetStudent(_ context.Context, id int) (school.Student, error) {
	return repo.db.student.get(id)
}

func (repo *schoolRepository) UpdateStudent(_ context.Context, s school.Student) (school.Student, error) {
	return repo.db.student.update(s)
}

func (repo *schoolRepository) DeleteStudents(_ context.Context, ids ...int) error {
	repo.db.student.delete(ids...)
	return nil
}

func (repo *schoolRepository) CreateTeacher(_ context.Context, t school.Teacher) (school.Teacher, error) {
	return repo.db.teacher.create(t), nil
}

func (repo *schoolRepository) QueryTeachers(_ context.Context) ([]school.Teacher, error) {
	return repo.db.teacher.all(), nil
}

func (repo *schoolRepository) GetTeacher(_ context.Context, id int) (school.Teacher, error) {
	return repo.db.teacher.get(id)
}

func (repo *schoolRepository) UpdateTeacher(_ context.Context, t school.Teacher) (school.Teacher, error) {
	return repo.db.teacher.update(t)
}

func (repo *schoolRepository) DeleteTeachers(_ context.Context, ids ...int) error {
	repo.db.teacher.delete(ids...)
	return nil
}

func (repo *schoolRepository) CreateClass(_ context.Context, c school.Class) (school.Class, error) {
	return repo.db.class.create(c), nil
}

func (repo *schoolRepository) QueryClasses(_ context.Context) ([]school.Class, error) {
	return repo.db.class.all(), nil
}

func (repo *schoolRepository) GetClass(_ context.Context, id int) (school.Class, error) {
	return repo.db.class.get(id)
}

func (repo *schoolRepository) UpdateClass(_ context.Context, c school.Class) (school.Class, error) {
	return repo.db.class.update(c)
}

func (repo *schoolRepository) DeleteClasses(_ context.Context, ids ...int) error {
	repo.db.class.delete(ids...)
	return nil
}

func (repo *schoolRepository) CreateExpense(_ context.Context, e school.Expense) (school.Expense, error) {
	return repo.db.expense.create(e), nil
}

func (repo *schoolRepository) QueryExpenses(_ context.Context) ([]school.Expense, error) {
	return repo.db.expense.all(), nil
}

func (repo *schoolRepository) GetExpense(_ context.Context, id int) (school.Expense, error) {
	return repo.db.expense.get(id)
}

func (repo *schoolRepository) UpdateExpense(_ context.Context, e school.Expense) (school.Expense, error) {
	return repo.db.expense.update(e)
}

func (repo *schoolRepository) DeleteExpenses(_ context.Context, ids ...int) error {
	repo.db.expense.delete(ids...)
	return nil
}

func (repo *schoolRepository) CreatePayment(_ context.Context, p school.Payment) (school.Payment, error) {
	return repo.db.payment.create(p), nil
}

func (repo *schoolRepository) QueryPayments(_ context.Context) ([]school.Payment, error) {
	return repo.db.payment.all(), nil
}

func (repo *schoolRepository) GetPayment(_ context.Context, id int) (school.Payment, error) {
	return repo.db.payment.get(id)
}

func (repo *schoolRepository) UpdatePayment(_ context.Context, p school.Payment) (school.Payment, error) {
	return repo.db.payment.update(p)
}

func (repo *schoolRepository) DeletePayments(_ context.Context, ids ...int) error {
	repo.db.payment.delete(ids...)
	return nil
}
