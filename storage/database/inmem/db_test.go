package inmemdb

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaoulBonsso/GM/core/school"
)

func TestTable(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	tbl := db.class

	a := tbl.create(school.Class{Name: "CP"})
	b := tbl.create(school.Class{Name: "CE1"})
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	b.Level = "Primaire"
	_, err = tbl.update(b)
	require.NoError(t, err)
	got, err := tbl.get(2)
	require.NoError(t, err)
	assert.Equal(t, "Primaire", got.Level)

	_, err = tbl.update(school.Class{ID: 9})
	assert.Equal(t, school.ErrNotFound, err)

	tbl.delete(1, 7)
	_, err = tbl.get(1)
	assert.Equal(t, school.ErrNotFound, err)

	// primary keys are never reused
	c := tbl.create(school.Class{Name: "CE2"})
	assert.Equal(t, 3, c.ID)
	assert.Len(t, tbl.all(), 2)
}

func TestTableConcurrentCreate(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db.payment.create(school.Payment{Status: school.PaymentPending})
		}()
	}
	wg.Wait()

	rows := db.payment.all()
	require.Len(t, rows, 50)
	for i, p := range rows {
		assert.Equal(t, i+1, p.ID, "rows are ordered by primary key")
	}
}

func TestSeed(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	Seed(db)
	repo := NewSchoolRepository(db)
	ctx := context.Background()

	students, err := repo.QueryStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 5)

	classes, err := repo.QueryClasses(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 5)
	for _, c := range classes {
		assert.Equal(t, c.Students, c.Boys+c.Girls, c.Name)
	}

	// every student and payment points at a seeded record
	for _, s := range students {
		class, err := repo.GetClass(ctx, s.ClassID)
		require.NoError(t, err)
		assert.Equal(t, class.Name, s.ClassName)
	}
	payments, err := repo.QueryPayments(ctx)
	require.NoError(t, err)
	for _, p := range payments {
		s, err := repo.GetStudent(ctx, p.StudentID)
		require.NoError(t, err)
		assert.Equal(t, s.FullName(), p.StudentName)
	}

	teacher, err := repo.GetTeacher(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, school.TeacherOnLeave, teacher.Status)
}
