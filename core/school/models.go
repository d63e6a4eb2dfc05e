package school

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Statuses
const (
	StudentActive   = "Actif"
	StudentInactive = "Inactif"

	TeacherActive  = "Actif"
	TeacherOnLeave = "En congé"
	TeacherRetired = "Retraité"

	ExpenseApproved = "Approuvé"
	ExpensePending  = "En attente"
	ExpenseRejected = "Rejeté"

	PaymentPaid      = "Payé"
	PaymentPending   = "En attente"
	PaymentCancelled = "Annulé"

	GenderMale   = "M"
	GenderFemale = "F"
)

var PaymentMethods = []string{"Espèces", "Chèque", "Virement bancaire", "Mobile Money"}

type (
	Student struct {
		ID                 int             `json:"id"`
		FirstName          string          `json:"firstName"`
		LastName           string          `json:"lastName"`
		ClassID            int             `json:"classId"`
		ClassName          string          `json:"className"`
		Gender             string          `json:"gender"`
		DateOfBirth        time.Time       `json:"dateOfBirth"`
		BirthPlace         string          `json:"birthPlace"`
		Nationality        string          `json:"nationality"`
		Address            string          `json:"address"`
		Email              string          `json:"email"`
		Phone              string          `json:"phone"`
		Status             string          `json:"status"`
		RegistrationDate   time.Time       `json:"registrationDate"`
		ParentName         string          `json:"parentName"`
		ParentContact      string          `json:"parentContact"`
		ParentEmail        string          `json:"parentEmail"`
		ParentProfession   string          `json:"parentProfession"`
		ParentRelationship string          `json:"parentRelationship"`
		ParentAddress      string          `json:"parentAddress"`
		TuitionFee         decimal.Decimal `json:"tuitionFee"`
		PaymentMethod      string          `json:"paymentMethod"`
		CreatedAt          time.Time       `json:"createdAt"`
		UpdatedAt          time.Time       `json:"updatedAt"`
	}

	NewStudent struct {
		FirstName          string          `json:"firstName" validate:"required,notblank,min=2"`
		LastName           string          `json:"lastName" validate:"required,notblank,min=2"`
		ClassID            int             `json:"classId" validate:"required,gt=0"`
		Gender             string          `json:"gender" validate:"required,oneof=M F"`
		DateOfBirth        string          `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
		BirthPlace         string          `json:"birthPlace"`
		Nationality        string          `json:"nationality"`
		Address            string          `json:"address"`
		Email              string          `json:"email" validate:"omitempty,email"`
		Phone              string          `json:"phone" validate:"omitempty,gnphone"`
		Status             string          `json:"status" validate:"omitempty,oneof=Actif Inactif"`
		RegistrationDate   string          `json:"registrationDate" validate:"omitempty,datetime=2006-01-02"`
		ParentName         string          `json:"parentName" validate:"required,notblank,min=2"`
		ParentContact      string          `json:"parentContact" validate:"required,gnphone"`
		ParentEmail        string          `json:"parentEmail" validate:"omitempty,email"`
		ParentProfession   string          `json:"parentProfession"`
		ParentRelationship string          `json:"parentRelationship"`
		ParentAddress      string          `json:"parentAddress"`
		TuitionFee         decimal.Decimal `json:"tuitionFee"`
		PaymentMethod      string          `json:"paymentMethod"`
	}

	Teacher struct {
		ID            int       `json:"id"`
		FirstName     string    `json:"firstName"`
		LastName      string    `json:"lastName"`
		Subject       string    `json:"subject"`
		Email         string    `json:"email"`
		Phone         string    `json:"phone"`
		Qualification string    `json:"qualification"`
		JoiningDate   time.Time `json:"joiningDate"`
		Status        string    `json:"status"`
		CreatedAt     time.Time `json:"createdAt"`
		UpdatedAt     time.Time `json:"updatedAt"`
	}

	NewTeacher struct {
		FirstName     string `json:"firstName" validate:"required,notblank,min=2"`
		LastName      string `json:"lastName" validate:"required,notblank,min=2"`
		Subject       string `json:"subject" validate:"required,notblank"`
		Email         string `json:"email" validate:"required,email"`
		Phone         string `json:"phone" validate:"required,gnphone"`
		Qualification string `json:"qualification"`
		JoiningDate   string `json:"joiningDate" validate:"omitempty,datetime=2006-01-02"`
		Status        string `json:"status" validate:"omitempty,oneof=Actif 'En congé' Retraité"`
	}

	// Class headcounts are the declared enrollment of the class, set through
	// NewClass. They are not counted from the student records.
	Class struct {
		ID           int       `json:"id"`
		Name         string    `json:"name"`
		Level        string    `json:"level"`
		Teacher      string    `json:"teacher"`
		Students     int       `json:"students"`
		Boys         int       `json:"boys"`
		Girls        int       `json:"girls"`
		AcademicYear string    `json:"academicYear"`
		CreatedAt    time.Time `json:"createdAt"`
		UpdatedAt    time.Time `json:"updatedAt"`
	}

	NewClass struct {
		Name         string `json:"name" validate:"required,notblank"`
		Level        string `json:"level" validate:"required,notblank"`
		Teacher      string `json:"teacher"`
		Boys         int    `json:"boys" validate:"gte=0"`
		Girls        int    `json:"girls" validate:"gte=0"`
		AcademicYear string `json:"academicYear"`
	}

	Expense struct {
		ID            int             `json:"id"`
		Title         string          `json:"title"`
		Amount        decimal.Decimal `json:"amount"`
		Date          time.Time       `json:"date"`
		Category      string          `json:"category"`
		PaymentMethod string          `json:"paymentMethod"`
		ApprovedBy    string          `json:"approvedBy"`
		Status        string          `json:"status"`
		Notes         string          `json:"notes"`
		CreatedAt     time.Time       `json:"createdAt"`
		UpdatedAt     time.Time       `json:"updatedAt"`
	}

	NewExpense struct {
		Title         string          `json:"title" validate:"required,notblank,min=2"`
		Amount        decimal.Decimal `json:"amount"`
		Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
		Category      string          `json:"category" validate:"required,notblank"`
		PaymentMethod string          `json:"paymentMethod" validate:"required,notblank"`
		ApprovedBy    string          `json:"approvedBy"`
		Status        string          `json:"status" validate:"omitempty,oneof=Approuvé 'En attente' Rejeté"`
		Notes         string          `json:"notes"`
	}

	Payment struct {
		ID            int             `json:"id"`
		StudentID     int             `json:"studentId"`
		StudentName   string          `json:"studentName"`
		ClassName     string          `json:"className"`
		Amount        decimal.Decimal `json:"amount"`
		Date          time.Time       `json:"date"`
		Description   string          `json:"description"`
		PaymentMethod string          `json:"paymentMethod"`
		Status        string          `json:"status"`
		CreatedAt     time.Time       `json:"createdAt"`
		UpdatedAt     time.Time       `json:"updatedAt"`
	}

	NewPayment struct {
		StudentID     int             `json:"studentId" validate:"required,gt=0"`
		Amount        decimal.Decimal `json:"amount"`
		Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
		Description   string          `json:"description" validate:"required,notblank"`
		PaymentMethod string          `json:"paymentMethod" validate:"required,notblank"`
		Status        string          `json:"status" validate:"omitempty,oneof=Payé 'En attente' Annulé"`
	}
)

func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

func (t Teacher) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

// IsApproved reports whether the expense counts in the approved totals.
func (e Expense) IsApproved() bool {
	return e.Status == ExpenseApproved
}

// IsPaid reports whether the payment counts in the collected totals.
func (p Payment) IsPaid() bool {
	return p.Status == PaymentPaid
}
