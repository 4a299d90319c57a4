package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newAPIClient(t *testing.T) *apiClient {
	gin.SetMode(gin.TestMode)
	store := memory.New(memory.WithClock(func() time.Time { return testNow }), memory.WithSeed()).Storage()
	sessions := newTestSessions()

	handlers := Handlers{
		Auth:       NewAuthHandler(auth.NewAuthService(store.Users, bcrypt.MinCost), sessions),
		Flights:    NewFlightHandler(flights.NewFlightService(store.Flights)),
		Gates:      NewGateHandler(gates.NewGateService(store.Gates, nil)),
		Employees:  NewEmployeeHandler(employees.NewEmployeeService(store.Employees, nil)),
		Passengers: NewPassengerHandler(passengers.NewPassengerService(store.Passengers, nil)),
		Stats:      NewStatsHandler(stats.NewStatsService(store.Stats, store.Passengers)),
	}
	router := gin.New()
	handlers.Register(router.Group("/api"), sessions)
	return &apiClient{t: t, router: router}
}

func (a *apiClient) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *apiClient) login() {
	w := a.do("POST", "/api/register", `{"username":"admin","password":"secret1"}`)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	a.cookie = sessionCookie(a.t, w)
}

func TestRouter_RequiresSession(t *testing.T) {
	api := newAPIClient(t)

	for _, target := range []string{"/api/flights", "/api/gates/available", "/api/stats/overview", "/api/user"} {
		w := api.do("GET", target, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String(), target)
	}
}

func TestRouter_AuthFlow(t *testing.T) {
	api := newAPIClient(t)
	api.login()

	w := api.do("GET", "/api/user", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"admin"}`, w.Body.String())

	w = api.do("POST", "/api/register", `{"username":"admin","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do("POST", "/api/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do("GET", "/api/flights", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	api.cookie = nil
	w = api.do("POST", "/api/login", `{"username":"admin","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid username or password"}`, w.Body.String())

	w = api.do("POST", "/api/login", `{"username":"admin","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_FlightCRUD(t *testing.T) {
	api := newAPIClient(t)
	api.login()

	w := api.do("GET", "/api/flights?sort=flightNumber&order=desc", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list listResponse[domain.Flight]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "UA2567", list.Data[0].FlightNumber)

	w = api.do("POST", "/api/flights", `{"flightNumber":"AA1234","airline":"X","origin":"A","destination":"B",`+
		`"departureDate":"2025-03-10","departureTime":"08:00","status":"scheduled"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "flightNumber")

	w = api.do("POST", "/api/flights", `{"flightNumber":"DL100","airline":"Delta","origin":"Atlanta (ATL)","destination":"Boston (BOS)",`+
		`"departureDate":"2025-03-11","departureTime":"08:00","status":"scheduled"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created domain.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "08:00:00", created.DepartureTime)
	assert.Nil(t, created.GateID)

	target := "/api/flights/" + jsonNumber(created.ID)
	w = api.do("PUT", target, `{"status":"cancelled"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)

	w = api.do("PUT", target, `{"status":"boarding"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do("DELETE", target, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = api.do("DELETE", target, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = api.do("GET", target, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Flight not found"}`, w.Body.String())

	w = api.do("GET", "/api/flights?sort=price", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_GatesAndPassengers(t *testing.T) {
	api := newAPIClient(t)
	api.login()

	w := api.do("GET", "/api/gates/available", "")
	require.Equal(t, http.StatusOK, w.Code)
	var available []domain.Gate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &available))
	require.Len(t, available, 1)
	assert.Equal(t, "A2", available[0].GateNumber)

	w = api.do("PUT", "/api/gates/"+jsonNumber(available[0].ID), `{"status":"occupied"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do("GET", "/api/gates/available", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = api.do("GET", "/api/passengers?flightId=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var onFlight listResponse[domain.Passenger]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &onFlight))
	assert.Equal(t, 2, onFlight.Total)

	w = api.do("GET", "/api/passengers?flightId=x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do("GET", "/api/employees?role=pilot", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestRouter_Stats(t *testing.T) {
	api := newAPIClient(t)
	api.login()

	w := api.do("GET", "/api/stats/flights-today", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())

	w = api.do("GET", "/api/stats/overview", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flightsToday":2,"totalPassengers":2,"onTimePercentage":50,"activeGates":"2/3"}`, w.Body.String())

	w = api.do("GET", "/api/stats/daily-traffic?days=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	var traffic []domain.DailyTraffic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &traffic))
	require.Len(t, traffic, 3)
	assert.Equal(t, "2025-03-10", traffic[2].Date)

	w = api.do("GET", "/api/stats/daily-traffic?days=367", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do("GET", "/api/stats/employees-role-count", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"role":"pilot","count":1}`)
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
