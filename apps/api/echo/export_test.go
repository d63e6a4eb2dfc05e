package echoapi_test

import (
	"bytes"
	"net/http"
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/RaoulBonsso/GM/core/report"
	"github.com/RaoulBonsso/GM/core/school"
)

func Test_schoolApi_export(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name            string
		path            string
		wantContentType string
		wantFile        *regexp.Regexp
		wantMagic       string
	}{
		{
			name:            "students list",
			path:            "/v1/students/export",
			wantContentType: report.ContentTypePDF,
			wantFile:        regexp.MustCompile(`^attachment; filename="liste_eleves_\d{4}-\d{2}-\d{2}\.pdf"$`),
			wantMagic:       "%PDF",
		},
		{
			name:            "teachers list with title",
			path:            "/v1/teachers/export?format=PDF&title=" + url.QueryEscape("Corps enseignant"),
			wantContentType: report.ContentTypePDF,
			wantFile:        regexp.MustCompile(`^attachment; filename="liste_enseignants_\d{4}-\d{2}-\d{2}\.pdf"$`),
			wantMagic:       "%PDF",
		},
		{
			name:            "payments spreadsheet",
			path:            "/v1/payments/export?format=xlsx",
			wantContentType: report.ContentTypeXLSX,
			wantFile:        regexp.MustCompile(`^attachment; filename="liste_paiements_\d{4}-\d{2}-\d{2}\.xlsx"$`),
			wantMagic:       "PK",
		},
		{
			name:            "student detail",
			path:            "/v1/students/1/export",
			wantContentType: report.ContentTypePDF,
			wantFile:        regexp.MustCompile(`^attachment; filename="fiche_eleve_1_\d{4}-\d{2}-\d{2}\.pdf"$`),
			wantMagic:       "%PDF",
		},
		{
			name:            "expense detail",
			path:            "/v1/expenses/4/export",
			wantContentType: report.ContentTypePDF,
			wantFile:        regexp.MustCompile(`^attachment; filename="details_depense_4_\d{4}-\d{2}-\d{2}\.pdf"$`),
			wantMagic:       "%PDF",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantContentType, rec.Header().Get("Content-Type"))
			assert.Regexp(t, tt.wantFile, rec.Header().Get("Content-Disposition"))
			assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte(tt.wantMagic)))
		})
	}

	assert.Contains(t, app.logs.String(), "report generated")
	assert.Contains(t, app.logs.String(), "kind:students")
}

func Test_schoolApi_exportFiltered(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/expenses/export?format=xlsx&status="+url.QueryEscape(school.ExpenseApproved))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	sheet := report.ExpenseListSpec.Title
	subtitle, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Total: 3 dépenses | Montant total approuvé: 3 900 000 F", subtitle)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, rows, 9, "title, subtitle, blank, header, 3 expenses, blank, summary")
}

func Test_schoolApi_exportErrors(t *testing.T) {
	app := setup(t)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "unknown format",
			method:   http.MethodGet,
			path:     "/v1/students/export?format=csv",
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"format": "format inconnu: csv"}),
		},
		{
			name:     "bad filter",
			method:   http.MethodGet,
			path:     "/v1/payments/export?student=abc",
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: `strconv.ParseInt: parsing "abc": invalid syntax`}),
		},
		{
			name:     "unknown record",
			method:   http.MethodGet,
			path:     "/v1/teachers/9/export",
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, errNotFound),
		},
		{
			name:     "classes have no document",
			method:   http.MethodGet,
			path:     "/v1/classes/export",
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, errNotFound),
		},
	})
}
