// Package report renders the school documents: paginated PDF lists and
// detail sheets, and spreadsheet exports of the same lists.
package report

import (
	"fmt"
	"time"

	"github.com/RaoulBonsso/GM/core/format"
	"github.com/RaoulBonsso/GM/core/school"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var nowFunc = time.Now // mockable

// Artifact is a generated file.
type Artifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Generator renders reports with a fixed Config. It holds no per-document
// state and is safe for concurrent use.
type Generator struct {
	cfg      Config
	now      func() time.Time
	compress bool
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg:      cfg,
		now:      func() time.Time { return nowFunc() },
		compress: true,
	}
}

// Config returns the generator's copy of its configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

func listFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", prefix, format.ISODate(now))
}

func detailFilename(prefix, id string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.pdf", prefix, id, format.ISODate(now))
}

func (g *Generator) StudentList(students []school.Student, title string) (Artifact, error) {
	return generateTabular(g, StudentListSpec, students, title)
}

func (g *Generator) TeacherList(teachers []school.Teacher, title string) (Artifact, error) {
	return generateTabular(g, TeacherListSpec, teachers, title)
}

func (g *Generator) ExpenseList(expenses []school.Expense, title string) (Artifact, error) {
	return generateTabular(g, ExpenseListSpec, expenses, title)
}

func (g *Generator) PaymentList(payments []school.Payment, title string) (Artifact, error) {
	return generateTabular(g, PaymentListSpec, payments, title)
}

func (g *Generator) StudentDetail(s school.Student) (Artifact, error) {
	return generateDetail(g, StudentDetailSpec, s)
}

func (g *Generator) TeacherDetail(t school.Teacher) (Artifact, error) {
	return generateDetail(g, TeacherDetailSpec, t)
}

func (g *Generator) ExpenseDetail(e school.Expense) (Artifact, error) {
	return generateDetail(g, ExpenseDetailSpec, e)
}

func (g *Generator) PaymentDetail(p school.Payment) (Artifact, error) {
	return generateDetail(g, PaymentDetailSpec, p)
}

var defaultGenerator = NewGenerator(DefaultConfig())

func StudentList(students []school.Student, title string) (Artifact, error) {
	return defaultGenerator.StudentList(students, title)
}

func TeacherList(teachers []school.Teacher, title string) (Artifact, error) {
	return defaultGenerator.TeacherList(teachers, title)
}

func ExpenseList(expenses []school.Expense, title string) (Artifact, error) {
	return defaultGenerator.ExpenseList(expenses, title)
}

func PaymentList(payments []school.Payment, title string) (Artifact, error) {
	return defaultGenerator.PaymentList(payments, title)
}

func StudentDetail(s school.Student) (Artifact, error) {
	return defaultGenerator.StudentDetail(s)
}

func TeacherDetail(t school.Teacher) (Artifact, error) {
	return defaultGenerator.TeacherDetail(t)
}

func ExpenseDetail(e school.Expense) (Artifact, error) {
	return defaultGenerator.ExpenseDetail(e)
}

func PaymentDetail(p school.Payment) (Artifact, error) {
	return defaultGenerator.PaymentDetail(p)
}
