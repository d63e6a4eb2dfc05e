package school

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/shopspring/decimal"

	"github.com/RaoulBonsso/GM/core/format"
)

const monthLayout = "2006-01"

type (
	Stats struct {
		AcademicYear string          `json:"academicYear"`
		Students     StudentStats    `json:"students"`
		Teachers     TeacherStats    `json:"teachers"`
		Payments     PaymentStats    `json:"payments"`
		Expenses     ExpenseStats    `json:"expenses"`
		Balance      decimal.Decimal `json:"balance"` // collected payments minus approved expenses
		SchoolDays   []MonthCount    `json:"schoolDays"`
	}

	StudentStats struct {
		Total     int            `json:"total"`
		New       int            `json:"new"` // registered during the current academic year
		Returning int            `json:"returning"`
		ByGender  map[string]int `json:"byGender"`
		ByClass   map[string]int `json:"byClass"`
	}

	TeacherStats struct {
		Total     int            `json:"total"`
		BySubject map[string]int `json:"bySubject"`
		ByStatus  map[string]int `json:"byStatus"`
	}

	PaymentStats struct {
		Count     int             `json:"count"`
		Collected decimal.Decimal `json:"collected"`
		Pending   decimal.Decimal `json:"pending"`
		ByStatus  map[string]int  `json:"byStatus"`
		ByMonth   []MonthAmount   `json:"byMonth"`
	}

	ExpenseStats struct {
		Count      int                        `json:"count"`
		Approved   decimal.Decimal            `json:"approved"`
		Pending    decimal.Decimal            `json:"pending"`
		ByCategory map[string]decimal.Decimal `json:"byCategory"`
	}

	MonthAmount struct {
		Month  string          `json:"month"`
		Amount decimal.Decimal `json:"amount"`
	}

	MonthCount struct {
		Month string `json:"month"`
		Days  int    `json:"days"`
	}
)

// ComputeStats aggregates the dashboard figures. now selects the academic year.
func ComputeStats(students []Student, teachers []Teacher, payments []Payment, expenses []Expense, now time.Time, c *cal.BusinessCalendar) Stats {
	start := format.AcademicYearStart(now)
	st := Stats{
		AcademicYear: format.AcademicYear(now),
		Students:     studentStats(students, start),
		Teachers:     teacherStats(teachers),
		Payments:     paymentStats(payments),
		Expenses:     expenseStats(expenses),
	}
	st.Balance = st.Payments.Collected.Sub(st.Expenses.Approved)
	if c != nil {
		for _, m := range schoolMonths(start) {
			st.SchoolDays = append(st.SchoolDays, MonthCount{Month: m.Format(monthLayout), Days: schoolDays(c, m)})
		}
	}
	return st
}

func studentStats(students []Student, yearStart time.Time) StudentStats {
	s := StudentStats{
		Total:    len(students),
		ByGender: make(map[string]int),
		ByClass:  make(map[string]int),
	}
	for _, stu := range students {
		if !stu.RegistrationDate.Before(yearStart) {
			s.New++
		}
		s.ByGender[stu.Gender]++
		s.ByClass[stu.ClassName]++
	}
	s.Returning = s.Total - s.New
	return s
}

func teacherStats(teachers []Teacher) TeacherStats {
	s := TeacherStats{
		Total:     len(teachers),
		BySubject: make(map[string]int),
		ByStatus:  make(map[string]int),
	}
	for _, t := range teachers {
		s.BySubject[t.Subject]++
		s.ByStatus[t.Status]++
	}
	return s
}

func paymentStats(payments []Payment) PaymentStats {
	s := PaymentStats{
		Count:     len(payments),
		Collected: decimal.Zero,
		Pending:   decimal.Zero,
		ByStatus:  make(map[string]int),
	}
	byMonth := make(map[string]decimal.Decimal)
	for _, p := range payments {
		s.ByStatus[p.Status]++
		switch p.Status {
		case PaymentPaid:
			s.Collected = s.Collected.Add(p.Amount)
			m := p.Date.Format(monthLayout)
			byMonth[m] = byMonth[m].Add(p.Amount)
		case PaymentPending:
			s.Pending = s.Pending.Add(p.Amount)
		}
	}
	for m, amount := range byMonth {
		s.ByMonth = append(s.ByMonth, MonthAmount{Month: m, Amount: amount})
	}
	sort.Slice(s.ByMonth, func(i, j int) bool { return s.ByMonth[i].Month < s.ByMonth[j].Month })
	return s
}

func expenseStats(expenses []Expense) ExpenseStats {
	s := ExpenseStats{
		Count:      len(expenses),
		Approved:   decimal.Zero,
		Pending:    decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
	}
	for _, e := range expenses {
		switch e.Status {
		case ExpenseApproved:
			s.Approved = s.Approved.Add(e.Amount)
			s.ByCategory[e.Category] = s.ByCategory[e.Category].Add(e.Amount)
		case ExpensePending:
			s.Pending = s.Pending.Add(e.Amount)
		}
	}
	return s
}

// TotalPaid sums the collected payments.
func TotalPaid(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.IsPaid() {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// TotalApproved sums the approved expenses.
func TotalApproved(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.IsApproved() {
			total = total.Add(e.Amount)
		}
	}
	return total
}
