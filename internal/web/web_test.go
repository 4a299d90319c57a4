package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/repository/memory"
	"github.com/Domenick1991/airport-ops/internal/service/auth"
	"github.com/Domenick1991/airport-ops/internal/service/employees"
	"github.com/Domenick1991/airport-ops/internal/service/flights"
	"github.com/Domenick1991/airport-ops/internal/service/gates"
	"github.com/Domenick1991/airport-ops/internal/service/passengers"
	"github.com/Domenick1991/airport-ops/internal/service/stats"
	"github.com/Domenick1991/airport-ops/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type browser struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newBrowser(t *testing.T) *browser {
	t.Helper()
	gin.SetMode(gin.TestMode)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := memory.New(memory.WithClock(func() time.Time { return now }), memory.WithSeed()).Storage()
	sessions := session.NewManager(session.NewMemoryStore(time.Hour), session.CookieConfig{Name: "airport_session", TTL: time.Hour})

	h, err := New(Services{
		Auth:       auth.NewAuthService(store.Users, bcrypt.MinCost),
		Flights:    flights.NewFlightService(store.Flights),
		Gates:      gates.NewGateService(store.Gates, nil),
		Employees:  employees.NewEmployeeService(store.Employees, nil),
		Passengers: passengers.NewPassengerService(store.Passengers, nil),
		Stats:      stats.NewStatsService(store.Stats, store.Passengers),
	}, sessions)
	require.NoError(t, err)

	router := gin.New()
	h.Register(router)
	return &browser{t: t, router: router}
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.send(httptest.NewRequest("GET", target, nil))
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.send(req)
}

func (b *browser) send(req *http.Request) *httptest.ResponseRecorder {
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == "airport_session" {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) signIn() {
	w := b.post("/register", url.Values{"username": {"admin"}, "password": {"secret1"}})
	require.Equal(b.t, http.StatusSeeOther, w.Code, w.Body.String())
	require.Equal(b.t, "/", w.Header().Get("Location"))
}

func TestPages_RedirectToLogin(t *testing.T) {
	b := newBrowser(t)

	for _, target := range []string{"/", "/flights", "/gates", "/employees", "/passengers"} {
		w := b.get(target)
		assert.Equal(t, http.StatusSeeOther, w.Code, target)
		assert.Equal(t, "/login", w.Header().Get("Location"), target)
	}

	w := b.get("/login")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/register"`)
}

func TestLogin(t *testing.T) {
	b := newBrowser(t)
	b.signIn()

	w := b.post("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, http.StatusSeeOther, b.get("/").Code)

	w = b.post("/login", url.Values{"username": {"admin"}, "password": {"nope-nope"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")

	w = b.post("/login", url.Values{"username": {"admin"}, "password": {"secret1"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, http.StatusSeeOther, b.get("/login").Code)
}

func TestRegister_ValidationError(t *testing.T) {
	b := newBrowser(t)

	w := b.post("/register", url.Values{"username": {"ops"}, "password": {"123"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation error: password")
	assert.Contains(t, w.Body.String(), `value="ops"`)
}

func TestDashboard(t *testing.T) {
	b := newBrowser(t)
	b.signIn()

	w := b.get("/?traffic=30&passengers=all")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Today's Flights")
	assert.Contains(t, body, "50%")
	assert.Contains(t, body, "2/3")
	assert.Contains(t, body, "AA1234")
	assert.Contains(t, body, `<option value="30" selected>`)
	assert.Contains(t, body, `"flightNumber":"AA1234"`)
	assert.Contains(t, body, "chart.js")
}

func TestFlightsPage_CreateAndValidate(t *testing.T) {
	b := newBrowser(t)
	b.signIn()

	w := b.get("/flights?status=delayed")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UA2567")
	assert.NotContains(t, w.Body.String(), "AA1234")

	form := url.Values{
		"flightNumber": {"AA1234"}, "airline": {"Delta"}, "origin": {"ATL"}, "destination": {"BOS"},
		"departureDate": {"2025-03-11"}, "departureTime": {"08:00"}, "status": {"scheduled"},
	}
	w = b.post("/flights", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `data-open-dialog="create-dialog"`)
	assert.Contains(t, w.Body.String(), `value="Delta"`)

	form.Set("flightNumber", "DL100")
	w = b.post("/flights?page=1", form)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/flights?page=1", w.Header().Get("Location"))

	w = b.get("/flights?search=dl1")
	assert.Contains(t, w.Body.String(), "DL100")
	assert.Contains(t, w.Body.String(), "08:00:00")
}

func TestFlightsPage_EditAndDelete(t *testing.T) {
	b := newBrowser(t)
	b.signIn()

	form := url.Values{
		"flightNumber": {"AA1234"}, "airline": {"American Airlines"}, "origin": {"New York (JFK)"},
		"destination": {"Los Angeles (LAX)"}, "departureDate": {"2025-03-10"}, "departureTime": {"10:30:00"},
		"gateId": {""}, "status": {"delayed"},
	}
	w := b.post("/flights/1", form)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = b.post("/flights/1", url.Values{"flightNumber": {""}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `data-open-dialog="edit-dialog"`)
	assert.Contains(t, w.Body.String(), `action="/flights/1"`)

	w = b.post("/flights/99", form)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Flight not found")

	w = b.post("/flights/2/delete", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	w = b.post("/flights/2/delete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEntityPages(t *testing.T) {
	b := newBrowser(t)
	b.signIn()

	w := b.get("/gates?status=maintenance")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "B1")
	assert.NotContains(t, w.Body.String(), "<td>A2</td>")

	w = b.get("/employees?role=flight_attendant")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Smith")
	assert.NotContains(t, w.Body.String(), "John Doe")

	w = b.get("/passengers?flightId=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Johnson")
	assert.Contains(t, w.Body.String(), "2 total")

	w = b.post("/passengers", url.Values{
		"firstName": {"Carol"}, "lastName": {"White"}, "email": {"carol@example.com"},
		"flightId": {"2"}, "seatNumber": {"3C"}, "checkedIn": {"true"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = b.post("/employees", url.Values{"firstName": {"Sam"}, "lastName": {"Lee"}, "email": {"not-an-email"}, "role": {"pilot"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")

	w = b.post("/gates", url.Values{"gateNumber": {"C1"}, "terminal": {"C"}, "status": {"available"}, "currentFlightId": {"x"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTopPassengers(t *testing.T) {
	var rows []domain.FlightPassengerCount
	for i := 1; i <= 12; i++ {
		rows = append(rows, domain.FlightPassengerCount{FlightID: int64(i), FlightNumber: "F", PassengerCount: i})
	}

	top := topPassengers(rows, 10)

	require.Len(t, top, 10)
	assert.Equal(t, 12, top[0].PassengerCount)
	assert.Equal(t, 3, top[9].PassengerCount)
	assert.Equal(t, 1, rows[0].PassengerCount)
}

func TestTrafficWindow(t *testing.T) {
	assert.Equal(t, 7, trafficWindow(""))
	assert.Equal(t, 30, trafficWindow("30"))
	assert.Equal(t, 90, trafficWindow("90"))
	assert.Equal(t, 7, trafficWindow("45"))
}
