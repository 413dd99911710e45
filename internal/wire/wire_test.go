package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/fallback"
	"safari-booking/pkg/utils"
)

const testSecret = "test-secret"

type RouterSuite struct {
	suite.Suite
	app *App
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	set := fallback.Default()
	set.TourPackages = []entity.TourPackage{
		{Base: entity.Base{ID: 1}, Slug: "serengeti-classic", Title: "Serengeti Classic", Featured: true},
		{Base: entity.Base{ID: 2}, Slug: "zanzibar-escape", Title: "Zanzibar Escape"},
	}
	set.Lodges = []entity.Lodge{{Base: entity.Base{ID: 1}, Slug: "mara-camp", Name: "Mara Camp"}}

	config := &utils.Config{Admin: utils.AdminConfig{Password: testSecret}}
	s.app = Wiring(Options{Fallback: set}, config, zap.NewNop())
}

func (s *RouterSuite) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.app.Router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) admin(method, path, body string) *httptest.ResponseRecorder {
	return s.do(method, path, body, map[string]string{"Authorization": "Bearer " + testSecret})
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *RouterSuite) TestBookingThenAdminList() {
	rec := s.do(http.MethodPost, "/api/bookings",
		`{"full_name":"Jane Doe","email":"jane@x.com","phone":"+1555","number_of_travelers":2}`, nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[map[string]any](s.T(), rec)
	s.Equal("created", created["status"])
	s.IsType(float64(0), created["booking_id"])
	bookingID := created["booking_id"].(float64)

	rec = s.admin(http.MethodGet, "/api/admin/bookings", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	page := decode[struct {
		Data []map[string]any `json:"data"`
	}](s.T(), rec)
	s.Require().Len(page.Data, 1)
	s.Equal(bookingID, page.Data[0]["id"])
	s.Equal("pending", page.Data[0]["status"])
	s.Contains(page.Data[0], "tour_package")
	s.Nil(page.Data[0]["tour_package"])
}

func (s *RouterSuite) TestAdminGateRejectsWithoutSideEffects() {
	cases := map[string]map[string]string{
		"no header":     nil,
		"basic scheme":  {"Authorization": "Basic " + testSecret},
		"empty token":   {"Authorization": "Bearer   "},
		"wrong token":   {"Authorization": "Bearer nope"},
		"lowercase":     {"Authorization": "bearer " + testSecret},
		"dev sentinel":  {"Authorization": "Bearer " + utils.DevAdminToken},
		"token+garbage": {"Authorization": "Bearer " + testSecret + "x"},
	}

	s.do(http.MethodPost, "/api/bookings",
		`{"full_name":"Jane Doe","email":"jane@x.com","phone":"+1555","number_of_travelers":2}`, nil)

	for name, headers := range cases {
		rec := s.do(http.MethodPatch, "/api/admin/bookings/1", `{"status":"confirmed"}`, headers)
		s.Equal(http.StatusUnauthorized, rec.Code, name)

		rec = s.do(http.MethodPost, "/api/admin/bookings/1/complete", "not json at all", headers)
		s.Equal(http.StatusUnauthorized, rec.Code, name)

		rec = s.do(http.MethodGet, "/api/admin/contact-messages", "", headers)
		s.Equal(http.StatusUnauthorized, rec.Code, name)
	}

	booking := s.app.Store.GetBooking(1)
	s.Require().NotNil(booking)
	s.Equal(entity.BookingStatusPending, booking.Status)
	s.Nil(booking.CompletedAt)
}

func (s *RouterSuite) TestTokenWhitespaceIsTrimmed() {
	rec := s.do(http.MethodGet, "/api/admin/bookings", "", map[string]string{"Authorization": "Bearer  " + testSecret + "  "})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterSuite) TestFallbackReadsIgnoreParameters() {
	for _, path := range []string{"/api/packages", "/api/packages?featured=true", "/api/packages?destination=kenya"} {
		rec := s.do(http.MethodGet, path, "", nil)
		s.Require().Equal(http.StatusOK, rec.Code, path)
		packages := decode[[]map[string]any](s.T(), rec)
		s.Len(packages, 2, path)
	}

	rec := s.do(http.MethodGet, "/api/lodges", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Len(decode[[]map[string]any](s.T(), rec), 1)

	rec = s.do(http.MethodGet, "/api/destinations", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/packages/serengeti-classic/itinerary", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/packages/unknown", "", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/home", "", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	home := decode[map[string]any](s.T(), rec)
	s.Len(home["featured_packages"], 1)
}

func (s *RouterSuite) TestBookingTravellerBoundaries() {
	body := func(n string) string {
		return `{"full_name":"Jane","email":"jane@x.com","phone":"+1555","number_of_travelers":` + n + `}`
	}

	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodPost, "/api/bookings", body("0"), nil).Code)
	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodPost, "/api/bookings", body("101"), nil).Code)
	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodPost, "/api/bookings", body("2.5"), nil).Code)
	s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/bookings", body("1"), nil).Code)
	s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/bookings", body("100"), nil).Code)
}

func (s *RouterSuite) TestBookingIDsIncrease() {
	body := `{"full_name":"Jane","email":"jane@x.com","phone":"+1555","number_of_travelers":1}`

	first := decode[map[string]any](s.T(), s.do(http.MethodPost, "/api/bookings", body, nil))
	second := decode[map[string]any](s.T(), s.do(http.MethodPost, "/api/bookings", body, nil))

	s.Greater(second["booking_id"].(float64), first["booking_id"].(float64))
}

func (s *RouterSuite) TestContactMessageLimit() {
	body := func(n int) string {
		return `{"name":"Ann","email":"ann@x.com","message":"` + strings.Repeat("m", n) + `"}`
	}

	rec := s.do(http.MethodPost, "/api/contact", body(2000), nil)
	s.Require().Equal(http.StatusAccepted, rec.Code, rec.Body.String())
	accepted := decode[map[string]any](s.T(), rec)
	s.Equal("accepted", accepted["status"])
	s.Equal(float64(1), accepted["contact_id"])

	rec = s.do(http.MethodPost, "/api/contact", body(2001), nil)
	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)
	errBody := decode[utils.ErrorResponse](s.T(), rec)
	s.Contains(errBody.Message, "2000")
}

func (s *RouterSuite) TestMalformedBodyIs400() {
	rec := s.do(http.MethodPost, "/api/bookings", `{"full_name":`, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestWrongContentTypeIs415() {
	rec := s.do(http.MethodPost, "/api/contact", "name=Ann", map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func (s *RouterSuite) TestCompleteAndContactClose() {
	s.do(http.MethodPost, "/api/bookings", `{"full_name":"Jane","email":"jane@x.com","phone":"+1555","number_of_travelers":1}`, nil)

	rec := s.admin(http.MethodPost, "/api/admin/bookings/1/complete", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	booking := decode[map[string]any](s.T(), rec)
	s.Equal("completed", booking["status"])
	s.NotNil(booking["completed_at"])

	rec = s.admin(http.MethodPost, "/api/admin/bookings/99/complete", "")
	s.Equal(http.StatusNotFound, rec.Code)

	s.do(http.MethodPost, "/api/contact", `{"name":"Ann","email":"ann@x.com","message":"hi"}`, nil)
	rec = s.admin(http.MethodPatch, "/api/admin/contact-messages/1", `{"status":"closed"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.NotNil(decode[map[string]any](s.T(), rec)["resolved_at"])

	rec = s.admin(http.MethodPatch, "/api/admin/contact-messages/1", `{"status":"new"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Nil(decode[map[string]any](s.T(), rec)["resolved_at"])
}

func (s *RouterSuite) TestHugePageNumbersServeEmptyPages() {
	s.do(http.MethodPost, "/api/bookings",
		`{"full_name":"Jane Doe","email":"jane@x.com","phone":"+1555","number_of_travelers":2}`, nil)
	s.do(http.MethodPost, "/api/contact", `{"name":"Ann","email":"ann@x.com","message":"Hello"}`, nil)

	paths := []string{
		"/api/admin/bookings?page=9223372036854775807",
		"/api/admin/bookings?page=9223372036854775807&per_page=100",
		"/api/admin/contact-messages?page=461168601842738792",
		"/api/admin/contact-messages?page=99999999999999999999",
	}

	for _, path := range paths {
		rec := s.admin(http.MethodGet, path, "")
		s.Require().Equal(http.StatusOK, rec.Code, path+" "+rec.Body.String())

		page := decode[struct {
			Data       []map[string]any `json:"data"`
			Pagination map[string]any   `json:"pagination"`
		}](s.T(), rec)
		s.Equal(float64(1), page.Pagination["total"], path)
		if strings.Contains(path, "99999999999999999999") {
			// Not an int at all: treated as page 1.
			s.Len(page.Data, 1, path)
			continue
		}
		s.Empty(page.Data, path)
	}
}

func (s *RouterSuite) TestDatabaseOnlyOperationsAre501() {
	paths := []struct{ method, path, body string }{
		{http.MethodDelete, "/api/admin/bookings/1", ""},
		{http.MethodDelete, "/api/admin/contact-messages/1", ""},
		{http.MethodGet, "/api/admin/packages", ""},
		{http.MethodPost, "/api/admin/packages", `{"slug":"new-trip","title":"New trip","duration_days":3}`},
		{http.MethodDelete, "/api/admin/lodges/1", ""},
		{http.MethodPut, "/api/admin/hero", `{"headline":"Hello"}`},
	}

	for _, p := range paths {
		rec := s.admin(p.method, p.path, p.body)
		s.Equal(http.StatusNotImplemented, rec.Code, p.method+" "+p.path)
	}
}

func (s *RouterSuite) TestRegistrationDisabledWithoutDatabase() {
	rec := s.admin(http.MethodPost, "/api/admin/users", `{"email":"a@b.co","name":"A","password":"longenough"}`)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *RouterSuite) TestLogin() {
	rec := s.do(http.MethodPost, "/api/admin/login", `{"password":"`+testSecret+`"}`, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(testSecret, decode[map[string]any](s.T(), rec)["token"])

	rec = s.do(http.MethodPost, "/api/admin/login", `{"password":"guess"}`, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterSuite) TestHealthAndMetrics() {
	rec := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/health/ready", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "not configured")

	s.do(http.MethodGet, "/api/lodges", "", nil)
	rec = s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "safari_fallback_reads_total")
}

func TestDatabaseURLWithoutPoolFallsBackToMemory(t *testing.T) {
	config := &utils.Config{Database: utils.DatabaseConfig{URL: "postgres://localhost/safari"}}
	app := Wiring(Options{}, config, zap.NewNop())

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/packages", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"full_name":"Jane Doe","email":"jane@x.com","phone":"+1555","number_of_travelers":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotNil(t, app.Store.GetBooking(1))
}

// failingDB answers every statement with err, the way a pool behaves when
// Postgres is down or rejects the statement.
type failingDB struct{ err error }

type failingRow struct{ err error }

func (r failingRow) Scan(...any) error { return r.err }

func (db failingDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, db.err
}

func (db failingDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return failingRow{err: db.err}
}

func (db failingDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, db.err
}

func (db failingDB) Begin(context.Context) (pgx.Tx, error) {
	return nil, db.err
}

func (db failingDB) Ping(context.Context) error {
	return db.err
}

func (db failingDB) Close() {}

func newDatabaseApp(t *testing.T, dbErr error) *App {
	t.Helper()
	config := &utils.Config{
		Database: utils.DatabaseConfig{URL: "postgres://localhost/safari"},
		Admin:    utils.AdminConfig{Password: testSecret},
	}
	return Wiring(Options{DB: failingDB{err: dbErr}}, config, zap.NewNop())
}

func serve(app *App, method, path, body string, admin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+testSecret)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestDatabaseDown_ReadsFallBackWritesFail(t *testing.T) {
	app := newDatabaseApp(t, errors.New("connection refused"))

	for _, path := range []string{"/api/packages", "/api/lodges", "/api/destinations", "/api/hero", "/api/home", "/api/packages/serengeti-classic/itinerary"} {
		rec := serve(app, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusOK, rec.Code, path+" "+rec.Body.String())
	}

	writes := []struct{ method, path, body string }{
		{http.MethodGet, "/api/admin/bookings", ""},
		{http.MethodGet, "/api/admin/contact-messages/1", ""},
		{http.MethodPatch, "/api/admin/bookings/1", `{"status":"confirmed"}`},
		{http.MethodPost, "/api/admin/packages", `{"slug":"new-trip","title":"New trip","duration_days":3}`},
		{http.MethodPut, "/api/admin/packages/1/itinerary", `{"days":[{"day_number":1,"title":"Arrival"}]}`},
		{http.MethodDelete, "/api/admin/lodges/1", ""},
	}
	for _, w := range writes {
		rec := serve(app, w.method, w.path, w.body, true)
		require.Equal(t, http.StatusInternalServerError, rec.Code, w.method+" "+w.path)
		assert.Contains(t, rec.Body.String(), "connection refused", w.method+" "+w.path)
	}

	rec := serve(app, http.MethodPost, "/api/bookings",
		`{"full_name":"Jane Doe","email":"jane@x.com","phone":"+1555","number_of_travelers":2}`, false)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, app.Store.GetBooking(1))

	rec = serve(app, http.MethodGet, "/health/ready", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDatabaseUniqueViolationIsConflict(t *testing.T) {
	app := newDatabaseApp(t, &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	rec := serve(app, http.MethodPost, "/api/admin/packages", `{"slug":"serengeti-classic","title":"Copy","duration_days":3}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = serve(app, http.MethodPost, "/api/admin/destinations", `{"slug":"serengeti","name":"Serengeti","country":"Tanzania"}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestDevSentinelWhenNoSecretConfigured(t *testing.T) {
	app := Wiring(Options{}, &utils.Config{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+utils.DevAdminToken)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
