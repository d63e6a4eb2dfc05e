package school

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaoulBonsso/GM/core"
)

func TestMatchesSearch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query", "  ", []string{"Amadou"}, true},
		{"substring", "dial", []string{"Amadou Diallo"}, true},
		{"case and accents", "ELEVE", []string{"Élève modèle"}, true},
		{"typo on long word", "mathematiqes", []string{"Mathématiques"}, true},
		{"typo on a later word", "Camarra", []string{"Ousmane Camara"}, true},
		{"short query no fuzzy", "bax", []string{"Bah"}, false},
		{"no match", "Sciences", []string{"Français", "Histoire"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesSearch(tt.query, tt.fields...))
		})
	}
}

func TestFilters(t *testing.T) {
	students := []Student{
		{ID: 1, FirstName: "Amadou", LastName: "Diallo", ClassID: 1, ClassName: "CM2", Status: StudentActive},
		{ID: 2, FirstName: "Fatou", LastName: "Sow", ClassID: 2, ClassName: "CE1", Status: StudentActive},
		{ID: 3, FirstName: "Ousmane", LastName: "Camara", ClassID: 1, ClassName: "CM2", Status: StudentInactive},
	}
	ids := func(ss []Student) []int {
		res := make([]int, 0, len(ss))
		for _, s := range ss {
			res = append(res, s.ID)
		}
		return res
	}

	tests := []struct {
		name string
		f    StudentFilter
		want []int
	}{
		{"all", StudentFilter{}, []int{1, 2, 3}},
		{"by class", StudentFilter{ClassID: 1}, []int{1, 3}},
		{"by status ignoring case", StudentFilter{Status: "actif"}, []int{1, 2}},
		{"by class name search", StudentFilter{Search: "cm2"}, []int{1, 3}},
		{"combined", StudentFilter{ClassID: 1, Status: StudentActive, Search: "amadou"}, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(filter(students, tt.f.Match)))
		})
	}

	expenses := []Expense{
		{Title: "Achat de fournitures", Category: "Fournitures", Status: ExpenseApproved},
		{Title: "Achat d'ordinateurs", Category: "Équipement", Status: ExpensePending},
	}
	assert.Len(t, filter(expenses, ExpenseFilter{Category: "equipement"}.Match), 1)
	assert.Len(t, filter(expenses, ExpenseFilter{Search: "achat"}.Match), 2)
	assert.Len(t, filter(expenses, ExpenseFilter{Status: ExpenseRejected}.Match), 0)

	teachers := []Teacher{
		{FirstName: "Ousmane", LastName: "Barry", Subject: "Éducation Physique", Status: TeacherOnLeave},
		{FirstName: "Mariama", LastName: "Sow", Subject: "Histoire-Géographie", Status: TeacherActive},
	}
	assert.Len(t, filter(teachers, TeacherFilter{Status: "en conge"}.Match), 1)
	assert.Len(t, filter(teachers, TeacherFilter{Subject: "education physique"}.Match), 1)

	payments := []Payment{
		{StudentID: 1, StudentName: "Amadou Diallo", PaymentMethod: "Mobile Money", Status: PaymentPaid},
		{StudentID: 2, StudentName: "Fatou Sow", PaymentMethod: "Espèces", Status: PaymentPending},
	}
	assert.Len(t, filter(payments, PaymentFilter{StudentID: 2}.Match), 1)
	assert.Len(t, filter(payments, PaymentFilter{Search: "mobile"}.Match), 1)

	classes := []Class{{Name: "CM2", Level: "Primaire"}, {Name: "6ème", Level: "Collège"}}
	assert.Len(t, filter(classes, ClassFilter{Level: "college"}.Match), 1)
}

func TestSortBy(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.September, d, 0, 0, 0, 0, time.UTC) }
	expenses := []Expense{
		{ID: 1, Title: "b", Amount: decimal.NewFromInt(100), Date: day(3)},
		{ID: 2, Title: "a", Amount: decimal.NewFromInt(300), Date: day(1)},
		{ID: 3, Title: "c", Amount: decimal.NewFromInt(100), Date: day(2)},
	}
	ids := func(es []Expense) []int {
		res := make([]int, 0, len(es))
		for _, e := range es {
			res = append(res, e.ID)
		}
		return res
	}

	tests := []struct {
		name      string
		orderings []Ordering
		want      []int
	}{
		{"none keeps input order", nil, []int{1, 2, 3}},
		{"by title", []Ordering{{Field: "title"}}, []int{2, 1, 3}},
		{"by amount desc", []Ordering{{Field: "amount", Descending: true}}, []int{2, 1, 3}},
		{"by amount then date", []Ordering{{Field: "amount"}, {Field: "date"}}, []int{3, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := append([]Expense(nil), expenses...)
			require.NoError(t, sortBy(items, tt.orderings, expenseOrderings))
			assert.Equal(t, tt.want, ids(items))
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		err := sortBy(append([]Expense(nil), expenses...), []Ordering{{Field: "password"}}, expenseOrderings)
		require.Error(t, err)
		vErr, ok := err.(*core.ValidationError)
		require.True(t, ok, "want *core.ValidationError, got %T", err)
		assert.Equal(t, map[string]string{"ordering": "champ de tri inconnu: password"}, vErr.FieldMap())
	})
}
