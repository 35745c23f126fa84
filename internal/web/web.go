// Package web serves the browser-facing HTML views over the domain services.
// Routes follow the classic list / add / save / update / delete / details
// shape with a redirect after every successful POST.
package web

import (
	"html/template"
	"io"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/carebase/carebase/internal/domain/appointment"
	"github.com/carebase/carebase/internal/domain/doctor"
	"github.com/carebase/carebase/internal/domain/medication"
	"github.com/carebase/carebase/internal/domain/patient"
	"github.com/carebase/carebase/pkg/pagination"
)

// Renderer adapts html/template to echo's Renderer interface. Templates are
// addressed by file name.
type Renderer struct {
	templates *template.Template
}

func NewRenderer(dir string) (*Renderer, error) {
	t, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type Handler struct {
	patients     *patient.Service
	doctors      *doctor.Service
	appointments *appointment.Service
	medications  *medication.Service
}

func NewHandler(p *patient.Service, d *doctor.Service, a *appointment.Service, m *medication.Service) *Handler {
	return &Handler{patients: p, doctors: d, appointments: a, medications: m}
}

// RegisterRoutes mounts the HTML surface on the echo instance. Appointments
// and medications are reachable under a doctor-facing and a patient-facing
// prefix; both share the same handlers.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)

	h.registerPatientRoutes(e)
	h.registerDoctorRoutes(e)

	h.registerAppointmentRoutes(e, "/doctor-appointments")
	h.registerAppointmentRoutes(e, "/patient-appointments")
	h.registerMedicationRoutes(e, "/doctor-medications")
	h.registerMedicationRoutes(e, "/patient-medications")
}

func (h *Handler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", nil)
}

// renderError shows the shared error page.
func renderError(c echo.Context, status int, msg string) error {
	return c.Render(status, "error.html", map[string]interface{}{"Message": msg})
}

// listPage carries a page of rows plus the pagination state the list
// templates need for prev/next links.
type listPage struct {
	Base   string
	Items  interface{}
	Params pagination.Params
	Total  int
}

// optional converts an HTML form value to a nullable column value.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// lookupNames returns id -> display-name maps for patients and doctors, used
// by the appointment and medication views. Bounded by the pagination cap.
func (h *Handler) lookupNames(c echo.Context) (map[int64]string, map[int64]string, error) {
	ctx := c.Request().Context()

	pats, _, err := h.patients.List(ctx, pagination.MaxLimit, 0)
	if err != nil {
		return nil, nil, err
	}
	docs, _, err := h.doctors.List(ctx, pagination.MaxLimit, 0)
	if err != nil {
		return nil, nil, err
	}

	patientNames := make(map[int64]string, len(pats))
	for _, p := range pats {
		patientNames[p.ID] = p.FullName()
	}
	doctorNames := make(map[int64]string, len(docs))
	for _, d := range docs {
		doctorNames[d.ID] = d.FullName()
	}
	return patientNames, doctorNames, nil
}
