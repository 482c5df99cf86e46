package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactform/core/submission/adapters/persistence/memory"
	"contactform/core/submission/adapters/rest"
	"contactform/core/submission/domain"
	"contactform/modules/middleware"
	"contactform/modules/oapi"
	"contactform/modules/server"
	"contactform/modules/services"
)

type staticSelector struct {
	store     domain.Store
	connected bool
}

func (s staticSelector) Select(context.Context) domain.Store   { return s.store }
func (s staticSelector) DurableConnected(context.Context) bool { return s.connected }

type panickingStore struct{ *memory.Store }

func (panickingStore) List(context.Context) ([]domain.Submission, error) {
	panic("index out of range")
}

type failingStore struct{ *memory.Store }

func (failingStore) List(context.Context) ([]domain.Submission, error) {
	return nil, assert.AnError
}

func newHandler(t *testing.T, store domain.Store) http.Handler {
	t.Helper()
	app := domain.NewApp(staticSelector{store: store}, nil, nil)
	srv, err := server.New("127.0.0.1", 3000,
		server.WithServices(services.NewContactAPIService(rest.NewSubmissionAPI(app), oapi.Specs, oapi.ContactSpec, "")),
		server.WithGlobalMiddlewares(
			rest.RecoverHTTPMiddleware(),
			middleware.CORS(middleware.CORSConfig{AllowedOrigins: []string{"*"}}),
		),
	)
	require.NoError(t, err)
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, message, body["error"])
	assert.Equal(t, message, body["detail"])
	assert.Equal(t, float64(status), body["status"])
}

const validForm = `{"name":"Ada Lovelace","email":"ada@example.com","subject":"Catering","message":"Do you cater weddings in June?"}`

func create(t *testing.T, h http.Handler, body string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/contact", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode(t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, rest.MsgCreated, resp["message"])
	id, ok := resp["submissionId"].(string)
	require.True(t, ok)
	return id
}

func TestHealth(t *testing.T) {
	h := newHandler(t, memory.New(nil))

	rec := do(t, h, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Server is running", body["status"])
	assert.Equal(t, "Disconnected", body["database"])
	assert.Equal(t, "Memory", body["storage"])
	assert.Equal(t, "Disabled", body["emailNotifications"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestCreateThenGet(t *testing.T) {
	h := newHandler(t, memory.New(nil))
	id := create(t, h, validForm)

	rec := do(t, h, http.MethodGet, "/api/submissions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	assert.NotEmpty(t, etag)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	sub := body["submission"].(map[string]any)
	assert.Equal(t, id, sub["id"])
	assert.Equal(t, "Ada Lovelace", sub["name"])
	assert.Equal(t, "new", sub["status"])

	cached := do(t, h, http.MethodGet, "/api/submissions/"+id, "", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, cached.Code)
	assert.Empty(t, cached.Body.String())
}

func TestCreateTrimsFields(t *testing.T) {
	h := newHandler(t, memory.New(nil))
	id := create(t, h, `{"name":"  Ada  ","email":"ada@example.com","subject":" Catering ","message":"  Do you cater weddings?  "}`)

	sub := decode(t, do(t, h, http.MethodGet, "/api/submissions/"+id, ""))["submission"].(map[string]any)
	assert.Equal(t, "Ada", sub["name"])
	assert.Equal(t, "Catering", sub["subject"])
	assert.Equal(t, "Do you cater weddings?", sub["message"])
}

func TestCreateAcceptsFormEncoding(t *testing.T) {
	h := newHandler(t, memory.New(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader("name=Ada&email=ada%40example.com&subject=Catering&message=Do+you+cater+weddings%3F"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateValidation(t *testing.T) {
	h := newHandler(t, memory.New(nil))

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"empty body", ``, domain.MsgFieldsRequired},
		{"missing name", `{"email":"ada@example.com","subject":"Catering","message":"Do you cater weddings?"}`, domain.MsgFieldsRequired},
		{"missing message", `{"name":"Ada","email":"ada@example.com","subject":"Catering"}`, domain.MsgFieldsRequired},
		{"short name", `{"name":" A ","email":"ada@example.com","subject":"Catering","message":"Do you cater weddings?"}`, domain.MsgNameTooShort},
		{"bad email", `{"name":"Ada","email":"ada@example","subject":"Catering","message":"Do you cater weddings?"}`, domain.MsgInvalidEmail},
		{"short subject", `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Do you cater weddings?"}`, domain.MsgSubjectShort},
		{"short message", `{"name":"Ada","email":"ada@example.com","subject":"Catering","message":"Hi there"}`, domain.MsgMessageShort},
		{"malformed json", `{"name":`, rest.MsgInvalidBody},
		{"wrong type", `{"name":42}`, rest.MsgInvalidBody},
		{"not an object", `["Ada"]`, rest.MsgInvalidBody},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertFailure(t, do(t, h, http.MethodPost, "/api/contact", tc.body), http.StatusBadRequest, tc.message)
		})
	}

	list := decode(t, do(t, h, http.MethodGet, "/api/submissions", ""))
	assert.Equal(t, float64(0), list["count"])
}

func TestListNewestFirst(t *testing.T) {
	h := newHandler(t, memory.New(nil))
	first := create(t, h, validForm)
	second := create(t, h, validForm)

	rec := do(t, h, http.MethodGet, "/api/submissions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, "Memory", body["source"])

	subs := body["submissions"].([]any)
	require.Len(t, subs, 2)
	assert.Equal(t, second, subs[0].(map[string]any)["id"])
	assert.Equal(t, first, subs[1].(map[string]any)["id"])
}

func TestListEmptyIsArray(t *testing.T) {
	h := newHandler(t, memory.New(nil))
	rec := do(t, h, http.MethodGet, "/api/submissions", "")
	assert.Contains(t, rec.Body.String(), `"submissions":[]`)
}

func TestPatchStatus(t *testing.T) {
	h := newHandler(t, memory.New(nil))
	id := create(t, h, validForm)
	path := "/api/submissions/" + id

	assertFailure(t, do(t, h, http.MethodPatch, path, `{"status":"deleted"}`), http.StatusBadRequest, domain.MsgInvalidStatus)
	assertFailure(t, do(t, h, http.MethodPatch, path, `{}`), http.StatusBadRequest, domain.MsgInvalidStatus)
	assertFailure(t, do(t, h, http.MethodPatch, path, `{"status":null}`), http.StatusBadRequest, domain.MsgInvalidStatus)
	assertFailure(t, do(t, h, http.MethodPatch, path, `{"status":`), http.StatusBadRequest, rest.MsgInvalidBody)
	assertFailure(t, do(t, h, http.MethodPatch, "/api/submissions/999", `{"status":"deleted"}`), http.StatusBadRequest, domain.MsgInvalidStatus)
	assertFailure(t, do(t, h, http.MethodPatch, "/api/submissions/999", `{"status":"read"}`), http.StatusNotFound, rest.MsgNotFound)

	first := do(t, h, http.MethodPatch, path, `{"status":"replied"}`)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "replied", decode(t, first)["submission"].(map[string]any)["status"])

	again := do(t, h, http.MethodPatch, path, `{"status":"replied"}`)
	require.Equal(t, http.StatusOK, again.Code)
	assert.JSONEq(t, first.Body.String(), again.Body.String())
	assert.Equal(t, first.Header().Get("ETag"), again.Header().Get("ETag"))
}

func TestDeleteThenGet(t *testing.T) {
	h := newHandler(t, memory.New(nil))
	id := create(t, h, validForm)
	path := "/api/submissions/" + id

	rec := do(t, h, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Submission deleted", body["message"])
	assert.Equal(t, id, body["submission"].(map[string]any)["id"])

	assertFailure(t, do(t, h, http.MethodGet, path, ""), http.StatusNotFound, rest.MsgNotFound)
	assertFailure(t, do(t, h, http.MethodDelete, path, ""), http.StatusNotFound, rest.MsgNotFound)
}

func TestMalformedIDIsNotFound(t *testing.T) {
	h := newHandler(t, memory.New(nil))
	assertFailure(t, do(t, h, http.MethodGet, "/api/submissions/not-an-id", ""), http.StatusNotFound, rest.MsgNotFound)
}

func TestUnmatchedRoutes(t *testing.T) {
	h := newHandler(t, memory.New(nil))

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/unknown"},
		{http.MethodPut, "/api/submissions/1"},
		{http.MethodPost, "/api/health"},
		{http.MethodGet, "/api/contact"},
		{http.MethodGet, "/not-here"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := do(t, h, tc.method, tc.path, "")
			assertFailure(t, rec, http.StatusNotFound, rest.MsgEndpointNotFound)
			assert.Equal(t, tc.path, decode(t, rec)["instance"])
		})
	}
}

func TestPanicIsRecovered(t *testing.T) {
	h := newHandler(t, panickingStore{memory.New(nil)})
	assertFailure(t, do(t, h, http.MethodGet, "/api/submissions", ""), http.StatusInternalServerError, rest.MsgInternal)
}

func TestStoreFailureIsGeneric(t *testing.T) {
	h := newHandler(t, failingStore{memory.New(nil)})
	rec := do(t, h, http.MethodGet, "/api/submissions", "")
	assertFailure(t, rec, http.StatusInternalServerError, "Failed to retrieve submissions")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestCreateWithEmptyJSONBody(t *testing.T) {
	h := newHandler(t, memory.New(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", http.NoBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assertFailure(t, rec, http.StatusBadRequest, domain.MsgFieldsRequired)
}

func TestCreateRejectsOversizedBody(t *testing.T) {
	h := newHandler(t, memory.New(nil))
	huge := `{"name":"Ada","email":"ada@example.com","subject":"Catering","message":"` + strings.Repeat("x", 2<<20) + `"}`

	assertFailure(t, do(t, h, http.MethodPost, "/api/contact", huge), http.StatusBadRequest, rest.MsgInvalidBody)
}

func TestCORSPreflightReachesNoRoute(t *testing.T) {
	h := newHandler(t, memory.New(nil))

	rec := do(t, h, http.MethodOptions, "/api/contact", "",
		"Origin", "https://contact.example.com",
		"Access-Control-Request-Method", http.MethodPost,
		"Access-Control-Request-Headers", "Content-Type",
	)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, h, http.MethodPatch, "/api/submissions/1", "",
		"Origin", "https://contact.example.com",
		"Access-Control-Request-Method", http.MethodPatch,
	)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestCrossOriginCreate(t *testing.T) {
	h := newHandler(t, memory.New(nil))

	rec := do(t, h, http.MethodPost, "/api/contact", validForm, "Origin", "https://contact.example.com")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
