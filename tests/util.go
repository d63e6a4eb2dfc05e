package testutil

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RaoulBonsso/GM/core"
	"github.com/RaoulBonsso/GM/core/school"
	logsvc "github.com/RaoulBonsso/GM/services/logger"
	inmemdb "github.com/RaoulBonsso/GM/storage/database/inmem"
)

// Now is the reference clock of the tests: mid second term of 2024-2025.
var Now = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

// Today is the date stamped in the generated file names, as YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// NewRepository returns an in-memory repository, seeded with the demo data when seed is set.
func NewRepository(t *testing.T, seed bool) school.Repository {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	if seed {
		inmemdb.Seed(db)
	}
	return inmemdb.NewSchoolRepository(db)
}

// NewLogger returns a logger printing to w, with rollbar disabled.
func NewLogger(w io.Writer) core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(w, "", 0), &core.Config{Env: "TEST", TestMode: true})
	logger.Enable(false)
	return logger
}

// NewService returns a school service over repo with the french validator and no holidays.
func NewService(repo school.Repository) *school.Service {
	validate, translator := core.NewValidator()
	return school.NewService(repo, validate, translator, school.NewSchoolCalendar(false))
}

func CreateStudent(t *testing.T, repo school.Repository, first, last string, classID int, registered time.Time) school.Student {
	class, err := repo.GetClass(context.Background(), classID)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	s, err := repo.CreateStudent(context.Background(), school.Student{
		FirstName:        first,
		LastName:         last,
		ClassID:          class.ID,
		ClassName:        class.Name,
		Gender:           school.GenderFemale,
		Status:           school.StudentActive,
		RegistrationDate: registered,
		ParentName:       "Parent " + last,
		ParentContact:    "620000000",
		TuitionFee:       decimal.NewFromInt(225000),
		CreatedAt:        registered,
		UpdatedAt:        registered,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}

func CreatePayment(t *testing.T, repo school.Repository, s school.Student, amount int64, status string, date time.Time) school.Payment {
	p, err := repo.CreatePayment(context.Background(), school.Payment{
		StudentID:     s.ID,
		StudentName:   s.FullName(),
		ClassName:     s.ClassName,
		Amount:        decimal.NewFromInt(amount),
		Date:          date,
		Description:   "Frais de scolarité",
		PaymentMethod: "Espèces",
		Status:        status,
		CreatedAt:     date,
		UpdatedAt:     date,
	})
	if err != nil {
		t.Fatalf("CreatePayment() failed: %v", err)
	}
	return p
}
