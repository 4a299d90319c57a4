// Package web serves the server-rendered operations console.
package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/service/auth"
	"github.com/Domenick1991/airport-ops/internal/service/employees"
	"github.com/Domenick1991/airport-ops/internal/service/flights"
	"github.com/Domenick1991/airport-ops/internal/service/gates"
	"github.com/Domenick1991/airport-ops/internal/service/passengers"
	"github.com/Domenick1991/airport-ops/internal/service/stats"
	"github.com/Domenick1991/airport-ops/internal/session"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageFiles = []string{"login.html", "dashboard.html", "flights.html", "gates.html", "employees.html", "passengers.html"}

const userKey = "web.user"

// Services are the use cases the pages call; the JSON API uses the same ones.
type Services struct {
	Auth       auth.AuthUseCase
	Flights    flights.FlightUseCase
	Gates      gates.GateUseCase
	Employees  employees.EmployeeUseCase
	Passengers passengers.PassengerUseCase
	Stats      stats.StatsUseCase
}

type Handler struct {
	svc      Services
	sessions *session.Manager
	pages    map[string]*template.Template
}

func New(svc Services, sessions *session.Manager) (*Handler, error) {
	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/pager.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templatesFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Handler{svc: svc, sessions: sessions, pages: pages}, nil
}

func (h *Handler) Register(router gin.IRouter) {
	router.GET("/login", h.loginPage)
	router.POST("/login", h.login)
	router.POST("/register", h.register)
	router.GET("/logout", h.logout)
	router.POST("/logout", h.logout)

	pages := router.Group("")
	pages.Use(h.requireLogin)
	pages.GET("/", h.dashboard)

	pages.GET("/flights", h.flights)
	pages.POST("/flights", h.createFlight)
	pages.POST("/flights/:id", h.updateFlight)
	pages.POST("/flights/:id/delete", h.deleteFlight)

	pages.GET("/gates", h.gates)
	pages.POST("/gates", h.createGate)
	pages.POST("/gates/:id", h.updateGate)
	pages.POST("/gates/:id/delete", h.deleteGate)

	pages.GET("/employees", h.employees)
	pages.POST("/employees", h.createEmployee)
	pages.POST("/employees/:id", h.updateEmployee)
	pages.POST("/employees/:id/delete", h.deleteEmployee)

	pages.GET("/passengers", h.passengers)
	pages.POST("/passengers", h.createPassenger)
	pages.POST("/passengers/:id", h.updatePassenger)
	pages.POST("/passengers/:id/delete", h.deletePassenger)
}

// view is the data every page template receives.
type view struct {
	Title  string
	Active string
	User   *domain.User
	Error  string
	// Open names the dialog to show on load ("create" or "edit"), with Action
	// the edit form target and Form the values to restore.
	Open   string
	Action string
	Form   url.Values
	Data   any
}

func (h *Handler) render(c *gin.Context, status int, page string, v view) {
	if u, ok := c.Get(userKey); ok {
		v.User = u.(*domain.User)
	}
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout.html", v); err != nil {
		log.Printf("render %s: %v", page, err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) fail(c *gin.Context, err error) {
	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func (h *Handler) requireLogin(c *gin.Context) {
	id, err := h.sessions.Resolve(c)
	if err != nil {
		if !session.IsNotFound(err) {
			log.Printf("session lookup failed: %v", err)
		}
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	user, err := h.svc.Auth.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		c.Abort()
		return
	}
	if user == nil {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Set(userKey, user)
	c.Next()
}

func (h *Handler) loginPage(c *gin.Context) {
	if _, err := h.sessions.Resolve(c); err == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.render(c, http.StatusOK, "login.html", view{Title: "Sign in"})
}

func credentials(c *gin.Context) domain.Credentials {
	return domain.Credentials{Username: c.PostForm("username"), Password: c.PostForm("password")}
}

func (h *Handler) login(c *gin.Context) {
	user, err := h.svc.Auth.Login(c.Request.Context(), credentials(c))
	if auth.IsInvalidCredentials(err) {
		h.render(c, http.StatusUnauthorized, "login.html", view{
			Title: "Sign in", Open: "login", Error: "Invalid username or password", Form: c.Request.PostForm,
		})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.startSession(c, user)
}

func (h *Handler) register(c *gin.Context) {
	user, err := h.svc.Auth.Register(c.Request.Context(), credentials(c))
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		h.render(c, http.StatusBadRequest, "login.html", view{
			Title: "Sign in", Open: "register", Error: verr.Error(), Form: c.Request.PostForm,
		})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.startSession(c, user)
}

func (h *Handler) startSession(c *gin.Context, user *domain.User) {
	if err := h.sessions.Start(c, user.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.End(c); err != nil {
		log.Printf("WARNING: destroy session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

var funcs = template.FuncMap{
	"deref": func(p *int64) int64 {
		if p == nil {
			return 0
		}
		return *p
	},
	"text": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
	"humanize": func(s any) string {
		words := strings.Split(fmt.Sprint(s), "_")
		for i, w := range words {
			if w != "" {
				words[i] = strings.ToUpper(w[:1]) + w[1:]
			}
		}
		return strings.Join(words, " ")
	},
	// record renders a row for the edit dialog's data attribute.
	"record": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}

// Fields scopes form values to one dialog so create and edit forms only
// restore what was submitted through them.
func (v view) Fields(dialog string) fields {
	return fields{dialog: dialog, v: v}
}

type fields struct {
	dialog string
	v      view
}

func (f fields) Value(key string) string {
	if f.v.Open != f.dialog {
		return ""
	}
	return f.v.Form.Get(key)
}

func (f fields) Selected(key string, val any) bool {
	return f.Value(key) == fmt.Sprint(val)
}

func (f fields) Data() any {
	return f.v.Data
}
