package echoapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaoulBonsso/GM/core/school"
	testutil "github.com/RaoulBonsso/GM/tests"
)

func Test_schoolApi_query(t *testing.T) {
	app := setup(t)
	ctx := context.Background()

	binta := testutil.CreateStudent(t, app.repo, "Binta", "Condé", 1, testutil.Now)

	student := func(id int) interface{} {
		s, err := app.svc.GetStudent(ctx, id)
		require.NoError(t, err)
		return s
	}
	teacher, err := app.svc.GetTeacher(ctx, 5)
	require.NoError(t, err)
	expense, err := app.svc.GetExpense(ctx, 2)
	require.NoError(t, err)
	class := func(id int) interface{} {
		c, err := app.svc.GetClass(ctx, id)
		require.NoError(t, err)
		return c
	}
	payment := func(id int) interface{} {
		p, err := app.svc.GetPayment(ctx, id)
		require.NoError(t, err)
		return p
	}

	runHTTPTests(t, app, []httpTest{
		{
			name:     "students of a class",
			method:   http.MethodGet,
			path:     "/v1/students?class=1&ordering=firstName",
			wantCode: http.StatusOK,
			wantData: marshallList(t, student(1), binta, student(5)),
		},
		{
			name:     "students search, youngest first",
			method:   http.MethodGet,
			path:     "/v1/students?search=mad&ordering=-dateOfBirth",
			wantCode: http.StatusOK,
			wantData: marshallList(t, student(3), student(1)),
		},
		{
			name:     "students bad class param",
			method:   http.MethodGet,
			path:     "/v1/students?class=abc",
			wantCode: http.StatusOK,
			wantData: marshallList(t),
		},
		{
			name:     "students unknown ordering",
			method:   http.MethodGet,
			path:     "/v1/students?ordering=password",
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"ordering": "champ de tri inconnu: password"}),
		},
		{
			name:     "teachers on leave",
			method:   http.MethodGet,
			path:     "/v1/teachers?status=" + url.QueryEscape(school.TeacherOnLeave),
			wantCode: http.StatusOK,
			wantData: marshallList(t, teacher),
		},
		{
			name:     "classes by name descending",
			method:   http.MethodGet,
			path:     "/v1/classes?level=primaire&ordering=-name",
			wantCode: http.StatusOK,
			wantData: marshallList(t, class(5), class(1), class(3), class(4), class(2)),
		},
		{
			name:     "expenses of a category",
			method:   http.MethodGet,
			path:     "/v1/expenses?category=Maintenance",
			wantCode: http.StatusOK,
			wantData: marshallList(t, expense),
		},
		{
			name:     "paid payments, latest first",
			method:   http.MethodGet,
			path:     "/v1/payments?status=" + url.QueryEscape(school.PaymentPaid) + "&ordering=-date",
			wantCode: http.StatusOK,
			wantData: marshallList(t, payment(3), payment(2), payment(1)),
		},
		{
			name:     "no match",
			method:   http.MethodGet,
			path:     "/v1/payments?search=zzzzzz",
			wantCode: http.StatusOK,
			wantData: marshallList(t),
		},
	})
}

func Test_schoolApi_studentCRUD(t *testing.T) {
	app := setup(t)
	ctx := context.Background()

	body := func(firstName, parentContact string) []byte {
		return marshallObj(t, map[string]interface{}{
			"firstName":     firstName,
			"lastName":      "Keita",
			"classId":       2,
			"gender":        school.GenderFemale,
			"dateOfBirth":   "2017-01-09",
			"parentName":    "Sékou Keita",
			"parentContact": parentContact,
			"tuitionFee":    225000,
		})
	}

	// create
	req, rec := newRequest(http.MethodPost, "/v1/students", body("Kadiatou", "622112233"))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created school.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 6, created.ID)
	assert.Equal(t, "CE1", created.ClassName)
	assert.Equal(t, school.StudentActive, created.Status)

	stored, err := app.svc.GetStudent(ctx, created.ID)
	require.NoError(t, err)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "create invalid",
			method:   http.MethodPost,
			path:     "/v1/students",
			body:     body("", "622112233"),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"firstName": "ce champ est obligatoire"}),
		},
		{
			name:     "create malformed",
			method:   http.MethodPost,
			path:     "/v1/students",
			body:     []byte(`{"classId": "deux"`),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: "unexpected EOF"}),
		},
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     "/v1/students/6",
			wantCode: http.StatusOK,
			wantData: marshallObj(t, stored),
		},
		{
			name:     "retrieve unknown",
			method:   http.MethodGet,
			path:     "/v1/students/99",
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, errNotFound),
		},
		{
			name:     "retrieve bad id",
			method:   http.MethodGet,
			path:     "/v1/students/abc",
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, errNotFound),
		},
		{
			name:     "update invalid",
			method:   http.MethodPut,
			path:     "/v1/students/6",
			body:     body("Kadia", "12345"),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"parentContact": "parentContact doit être un numéro de téléphone guinéen valide"}),
		},
	})

	// update
	req, rec = newRequest(http.MethodPut, "/v1/students/6/", body("Kadia", "622112233"))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated, err := app.svc.GetStudent(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "Kadia Keita", updated.FullName())

	// delete
	req, rec = newRequest(http.MethodDelete, "/v1/students/6")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, err = app.svc.GetStudent(ctx, 6)
	assert.Equal(t, school.ErrNotFound, err)

	// delete multiple
	req, rec = newRequest(http.MethodDelete, "/v1/students?id=2&id=3")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	students, err := app.svc.QueryStudents(ctx, school.StudentFilter{})
	require.NoError(t, err)
	assert.Len(t, students, 3)
}

func Test_schoolApi_stats(t *testing.T) {
	app := setup(t)
	s := app.svc
	ctx := context.Background()

	student, err := s.GetStudent(ctx, 4)
	require.NoError(t, err)
	testutil.CreatePayment(t, app.repo, student, 75000, school.PaymentPaid, testutil.Now)

	req, rec := newRequest(http.MethodGet, "/v1/dashboard/stats")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var st school.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 5, st.Students.Total)
	assert.Equal(t, 5, st.Teachers.Total)
	assert.Equal(t, 6, st.Payments.Count)
	assert.Equal(t, "300000", st.Payments.Collected.String())
	assert.Equal(t, "3900000", st.Expenses.Approved.String())
	assert.Equal(t, "-3600000", st.Balance.String())
}
