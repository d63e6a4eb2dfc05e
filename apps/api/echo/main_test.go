package echoapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/RaoulBonsso/GM/apps/api/echo"
	"github.com/RaoulBonsso/GM/core"
	"github.com/RaoulBonsso/GM/core/report"
	"github.com/RaoulBonsso/GM/core/school"
	testutil "github.com/RaoulBonsso/GM/tests"
)

var errNotFound = httpErr{Error: "ressource introuvable"}

type testApp struct {
	Server
	repo school.Repository
	svc  *school.Service
	logs *bytes.Buffer
}

func setup(t *testing.T) testApp {
	// set up repos & services
	repo := testutil.NewRepository(t, true)
	svc := testutil.NewService(repo)
	var logs bytes.Buffer

	// set up server
	app := NewServer(
		ServerDeps{
			Conf:      &core.Config{Env: "TEST", TestMode: true},
			Logger:    testutil.NewLogger(&logs),
			SchoolSvc: svc,
			Reports:   report.NewGenerator(report.DefaultConfig()),
		},
	)
	return testApp{Server: app, repo: repo, svc: svc, logs: &logs}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body io.Reader = http.NoBody
	if len(data) > 0 && data[0] != nil {
		body = bytes.NewReader(data[0])
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func marshallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marshallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, tt.wantCode, rec.Code, "status code")
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func TestHome(t *testing.T) {
	app := setup(t)
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bienvenue sur l'API GM !", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
