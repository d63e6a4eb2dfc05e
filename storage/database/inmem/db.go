package inmemdb

import (
	"sort"
	"sync"

	"github.com/RaoulBonsso/GM/core/school"
)

type (
	DB struct {
		student *table[school.Student]
		teacher *table[school.Teacher]
		class   *table[school.Class]
		expense *table[school.Expense]
		payment *table[school.Payment]
	}

	// table is a map of rows keyed by primary key, with its own pk sequence.
	table[T any] struct {
		t       map[int]T
		pkCount int
		mutex   sync.RWMutex
		id      func(T) int
		setID   func(*T, int)
	}
)

func newTable[T any](id func(T) int, setID func(*T, int)) *table[T] {
	return &table[T]{t: make(map[int]T), id: id, setID: setID}
}

func Open() (*DB, error) {
	db := &DB{
		student: newTable(func(s school.Student) int { return s.ID }, func(s *school.Student, id int) { s.ID = id }),
		teacher: newTable(func(t school.Teacher) int { return t.ID }, func(t *school.Teacher, id int) { t.ID = id }),
		class:   newTable(func(c school.Class) int { return c.ID }, func(c *school.Class, id int) { c.ID = id }),
		expense: newTable(func(e school.Expense) int { return e.ID }, func(e *school.Expense, id int) { e.ID = id }),
		payment: newTable(func(p school.Payment) int { return p.ID }, func(p *school.Payment, id int) { p.ID = id }),
	}
	return db, nil
}

func (tbl *table[T]) create(row T) T {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	tbl.pkCount++
	tbl.setID(&row, tbl.pkCount)
	tbl.t[tbl.pkCount] = row
	return row
}

// all returns the rows ordered by primary key.
func (tbl *table[T]) all() []T {
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	rows := make([]T, 0, len(tbl.t))
	for _, r := range tbl.t {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return tbl.id(rows[i]) < tbl.id(rows[j]) })
	return rows
}

func (tbl *table[T]) get(id int) (T, error) {
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	if r, ok := tbl.t[id]; ok {
		return r, nil
	}
	var zero T
	return zero, school.ErrNotFound
}

func (tbl *table[T]) update(row T) (T, error) {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	id := tbl.id(row)
	if _, ok := tbl.t[id]; !ok {
		var zero T
		return zero, school.ErrNotFound
	}
	tbl.t[id] = row
	return row, nil
}

func (tbl *table[T]) delete(ids ...int) {
	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()
	for _, id := range ids {
		delete(tbl.t, id)
	}
}
