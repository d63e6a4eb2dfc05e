package school

import (
	"cmp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/RaoulBonsso/GM/core"
)

var (
	// words at least this long tolerate a typo
	fuzzyMinLen   = 5
	fuzzyMinRatio = .8
)

type (
	// Ordering sorts on Field, ascending unless Descending.
	Ordering struct {
		Field      string
		Descending bool
	}

	StudentFilter struct {
		Search    string
		ClassID   int
		Status    string
		Orderings []Ordering
	}

	TeacherFilter struct {
		Search    string
		Status    string
		Subject   string
		Orderings []Ordering
	}

	ClassFilter struct {
		Search    string
		Level     string
		Orderings []Ordering
	}

	ExpenseFilter struct {
		Search    string
		Category  string
		Status    string
		Orderings []Ordering
	}

	PaymentFilter struct {
		Search    string
		Status    string
		StudentID int
		Orderings []Ordering
	}

	compareFunc[T any] func(a, b T) int
)

func (f StudentFilter) Match(s Student) bool {
	if f.ClassID != 0 && s.ClassID != f.ClassID {
		return false
	}
	if f.Status != "" && !sameText(s.Status, f.Status) {
		return false
	}
	return matchesSearch(f.Search, s.FirstName, s.LastName, s.FullName(), s.ClassName)
}

func (f TeacherFilter) Match(t Teacher) bool {
	if f.Status != "" && !sameText(t.Status, f.Status) {
		return false
	}
	if f.Subject != "" && !sameText(t.Subject, f.Subject) {
		return false
	}
	return matchesSearch(f.Search, t.FirstName, t.LastName, t.Subject, t.Email)
}

func (f ClassFilter) Match(c Class) bool {
	if f.Level != "" && !sameText(c.Level, f.Level) {
		return false
	}
	return matchesSearch(f.Search, c.Name, c.Teacher)
}

func (f ExpenseFilter) Match(e Expense) bool {
	if f.Category != "" && !sameText(e.Category, f.Category) {
		return false
	}
	if f.Status != "" && !sameText(e.Status, f.Status) {
		return false
	}
	return matchesSearch(f.Search, e.Title, e.Category)
}

func (f PaymentFilter) Match(p Payment) bool {
	if f.Status != "" && !sameText(p.Status, f.Status) {
		return false
	}
	if f.StudentID != 0 && p.StudentID != f.StudentID {
		return false
	}
	return matchesSearch(f.Search, p.StudentName, p.Description, p.PaymentMethod)
}

func sameText(a, b string) bool {
	return core.FoldString(a) == core.FoldString(b)
}

// matchesSearch does a case and accent insensitive substring match of query on
// any of fields. Long query words also match field words that are close enough.
func matchesSearch(query string, fields ...string) bool {
	q := core.FoldString(query)
	if q == "" {
		return true
	}
	for _, fld := range fields {
		f := core.FoldString(fld)
		if strings.Contains(f, q) {
			return true
		}
		if utf8.RuneCountInString(q) < fuzzyMinLen {
			continue
		}
		for _, word := range strings.Fields(f) {
			if similarity(q, word) >= fuzzyMinRatio {
				return true
			}
		}
	}
	return false
}

func similarity(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

func filter[T any](items []T, match func(T) bool) []T {
	res := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			res = append(res, it)
		}
	}
	return res
}

// sortBy orders items by the given orderings, falling back to the input order.
func sortBy[T any](items []T, orderings []Ordering, fields map[string]compareFunc[T]) error {
	cmps := make([]compareFunc[T], 0, len(orderings))
	for _, o := range orderings {
		fn, ok := fields[o.Field]
		if !ok {
			return core.NewValidationError(
				errors.Errorf("unknown ordering field %q", o.Field),
				core.FieldError{Field: "ordering", Error: "champ de tri inconnu: " + o.Field},
			)
		}
		if o.Descending {
			asc := fn
			fn = func(a, b T) int { return -asc(a, b) }
		}
		cmps = append(cmps, fn)
	}
	if len(cmps) == 0 {
		return nil
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, c := range cmps {
			if r := c(items[i], items[j]); r != 0 {
				return r < 0
			}
		}
		return false
	})
	return nil
}

func foldCompare(a, b string) int {
	return cmp.Compare(core.FoldString(a), core.FoldString(b))
}

var (
	studentOrderings = map[string]compareFunc[Student]{
		"id":               func(a, b Student) int { return cmp.Compare(a.ID, b.ID) },
		"firstName":        func(a, b Student) int { return foldCompare(a.FirstName, b.FirstName) },
		"lastName":         func(a, b Student) int { return foldCompare(a.LastName, b.LastName) },
		"className":        func(a, b Student) int { return foldCompare(a.ClassName, b.ClassName) },
		"dateOfBirth":      func(a, b Student) int { return a.DateOfBirth.Compare(b.DateOfBirth) },
		"registrationDate": func(a, b Student) int { return a.RegistrationDate.Compare(b.RegistrationDate) },
	}

	teacherOrderings = map[string]compareFunc[Teacher]{
		"id":          func(a, b Teacher) int { return cmp.Compare(a.ID, b.ID) },
		"firstName":   func(a, b Teacher) int { return foldCompare(a.FirstName, b.FirstName) },
		"lastName":    func(a, b Teacher) int { return foldCompare(a.LastName, b.LastName) },
		"subject":     func(a, b Teacher) int { return foldCompare(a.Subject, b.Subject) },
		"joiningDate": func(a, b Teacher) int { return a.JoiningDate.Compare(b.JoiningDate) },
	}

	classOrderings = map[string]compareFunc[Class]{
		"id":       func(a, b Class) int { return cmp.Compare(a.ID, b.ID) },
		"name":     func(a, b Class) int { return foldCompare(a.Name, b.Name) },
		"level":    func(a, b Class) int { return foldCompare(a.Level, b.Level) },
		"students": func(a, b Class) int { return cmp.Compare(a.Students, b.Students) },
	}

	expenseOrderings = map[string]compareFunc[Expense]{
		"id":       func(a, b Expense) int { return cmp.Compare(a.ID, b.ID) },
		"title":    func(a, b Expense) int { return foldCompare(a.Title, b.Title) },
		"amount":   func(a, b Expense) int { return a.Amount.Cmp(b.Amount) },
		"date":     func(a, b Expense) int { return a.Date.Compare(b.Date) },
		"category": func(a, b Expense) int { return foldCompare(a.Category, b.Category) },
	}

	paymentOrderings = map[string]compareFunc[Payment]{
		"id":          func(a, b Payment) int { return cmp.Compare(a.ID, b.ID) },
		"studentName": func(a, b Payment) int { return foldCompare(a.StudentName, b.StudentName) },
		"amount":      func(a, b Payment) int { return a.Amount.Cmp(b.Amount) },
		"date":        func(a, b Payment) int { return a.Date.Compare(b.Date) },
		"status":      func(a, b Payment) int { return foldCompare(a.Status, b.Status) },
	}
)
