package school

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStats(t *testing.T) {
	now := date(2025, time.March, 15)
	students := []Student{
		{ClassName: "CM2", Gender: GenderMale, RegistrationDate: date(2023, time.September, 1)},
		{ClassName: "CM2", Gender: GenderMale, RegistrationDate: date(2024, time.September, 1)},
		{ClassName: "CE1", Gender: GenderFemale, RegistrationDate: date(2025, time.March, 1)},
	}
	teachers := []Teacher{
		{Subject: "Sciences", Status: TeacherActive},
		{Subject: "Sciences", Status: TeacherOnLeave},
	}
	payments := []Payment{
		{Amount: decimal.NewFromInt(75000), Date: date(2024, time.September, 1), Status: PaymentPaid},
		{Amount: decimal.NewFromInt(75000), Date: date(2024, time.September, 5), Status: PaymentPaid},
		{Amount: decimal.NewFromInt(50000), Date: date(2024, time.October, 2), Status: PaymentPaid},
		{Amount: decimal.NewFromInt(75000), Date: date(2024, time.September, 15), Status: PaymentPending},
		{Amount: decimal.NewFromInt(75000), Date: date(2024, time.September, 20), Status: PaymentCancelled},
	}
	expenses := []Expense{
		{Amount: decimal.NewFromInt(150000), Category: "Maintenance", Status: ExpenseApproved},
		{Amount: decimal.NewFromInt(1200000), Category: "Équipement", Status: ExpensePending},
		{Amount: decimal.NewFromInt(500000), Category: "Infrastructure", Status: ExpenseRejected},
	}

	st := ComputeStats(students, teachers, payments, expenses, now, NewSchoolCalendar(true))

	assert.Equal(t, "2024-2025", st.AcademicYear)
	assert.Equal(t, StudentStats{
		Total:     3,
		New:       2,
		Returning: 1,
		ByGender:  map[string]int{GenderMale: 2, GenderFemale: 1},
		ByClass:   map[string]int{"CM2": 2, "CE1": 1},
	}, st.Students)
	assert.Equal(t, 2, st.Teachers.BySubject["Sciences"])
	assert.Equal(t, 1, st.Teachers.ByStatus[TeacherOnLeave])

	assert.Equal(t, 5, st.Payments.Count)
	assert.True(t, st.Payments.Collected.Equal(decimal.NewFromInt(200000)), "collected = %s", st.Payments.Collected)
	assert.True(t, st.Payments.Pending.Equal(decimal.NewFromInt(75000)))
	require.Len(t, st.Payments.ByMonth, 2)
	assert.Equal(t, "2024-09", st.Payments.ByMonth[0].Month)
	assert.True(t, st.Payments.ByMonth[0].Amount.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, "2024-10", st.Payments.ByMonth[1].Month)

	assert.True(t, st.Expenses.Approved.Equal(decimal.NewFromInt(150000)))
	assert.True(t, st.Expenses.Pending.Equal(decimal.NewFromInt(1200000)))
	assert.Len(t, st.Expenses.ByCategory, 1)
	assert.True(t, st.Balance.Equal(decimal.NewFromInt(50000)))

	require.Len(t, st.SchoolDays, 10)
	assert.Equal(t, MonthCount{Month: "2024-09", Days: 21}, st.SchoolDays[0])
	assert.Equal(t, MonthCount{Month: "2024-10", Days: 22}, st.SchoolDays[1], "2 October is off")
	assert.Equal(t, "2025-06", st.SchoolDays[9].Month)
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil, nil, nil, nil, date(2024, time.August, 31), nil)
	assert.Equal(t, "2023-2024", st.AcademicYear)
	assert.True(t, st.Balance.IsZero())
	assert.Empty(t, st.Payments.ByMonth)
	assert.Nil(t, st.SchoolDays)
}

func TestSchoolDays(t *testing.T) {
	tests := []struct {
		name     string
		month    time.Time
		holidays bool
		want     int
	}{
		{"october without holidays", date(2024, time.October, 1), false, 23},
		{"october with independence day", date(2024, time.October, 1), true, 22},
		{"april with easter monday and 3 april", date(2025, time.April, 1), true, 20},
		{"december with christmas", date(2024, time.December, 1), true, 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schoolDays(NewSchoolCalendar(tt.holidays), tt.month))
		})
	}
}

func TestTotals(t *testing.T) {
	payments := []Payment{
		{Amount: decimal.NewFromInt(75000), Status: PaymentPaid},
		{Amount: decimal.NewFromInt(75000), Status: PaymentPending},
	}
	assert.Equal(t, "75000", TotalPaid(payments).String())
	assert.True(t, TotalPaid(nil).IsZero())

	expenses := []Expense{
		{Amount: decimal.NewFromInt(250000), Status: ExpenseApproved},
		{Amount: decimal.NewFromInt(3500000), Status: ExpenseApproved},
		{Amount: decimal.NewFromInt(500000), Status: ExpenseRejected},
	}
	assert.Equal(t, "3750000", TotalApproved(expenses).String())
}
