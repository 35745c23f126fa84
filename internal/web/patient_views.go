package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carebase/carebase/internal/domain/patient"
	"github.com/carebase/carebase/pkg/pagination"
)

func (h *Handler) registerPatientRoutes(e *echo.Echo) {
	e.GET("/patients", h.listPatients)
	e.GET("/patients/add", h.newPatientForm)
	e.POST("/patients/save", h.savePatient)
	e.GET("/patients/update/:id", h.editPatientForm)
	e.POST("/patients/update/:id", h.updatePatient)
	e.POST("/patients/delete/:id", h.deletePatient)
	e.GET("/patients/details/:id", h.patientDetails)
}

type patientFormData struct {
	Action  string
	Patient *patient.Patient
	Error   string
}

func (h *Handler) listPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.patients.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "patients.html", listPage{
		Base: "/patients", Items: items, Params: pg, Total: total,
	})
}

func (h *Handler) newPatientForm(c echo.Context) error {
	return c.Render(http.StatusOK, "patient_form.html", patientFormData{
		Action:  "/patients/save",
		Patient: &patient.Patient{},
	})
}

func patientFromForm(c echo.Context) *patient.Patient {
	return &patient.Patient{
		FirstName:   c.FormValue("first_name"),
		LastName:    c.FormValue("last_name"),
		Email:       c.FormValue("email"),
		PhoneNumber: optional(c.FormValue("phone_number")),
		Address:     optional(c.FormValue("address")),
	}
}

func (h *Handler) savePatient(c echo.Context) error {
	p := patientFromForm(c)
	if err := h.patients.Create(c.Request().Context(), p); err != nil {
		return c.Render(http.StatusBadRequest, "patient_form.html", patientFormData{
			Action:  "/patients/save",
			Patient: p,
			Error:   err.Error(),
		})
	}
	return c.Redirect(http.StatusFound, "/patients")
}

func (h *Handler) editPatientForm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid patient id")
	}
	p, err := h.patients.Get(c.Request().Context(), id)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	if p == nil {
		return renderError(c, http.StatusNotFound, "patient not found")
	}
	return c.Render(http.StatusOK, "patient_form.html", patientFormData{
		Action:  fmt.Sprintf("/patients/update/%d", id),
		Patient: p,
	})
}

func (h *Handler) updatePatient(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid patient id")
	}
	in := patientFromForm(c)
	p, err := h.patients.Update(c.Request().Context(), id, in)
	if err != nil {
		in.ID = id
		return c.Render(http.StatusBadRequest, "patient_form.html", patientFormData{
			Action:  fmt.Sprintf("/patients/update/%d", id),
			Patient: in,
			Error:   err.Error(),
		})
	}
	if p == nil {
		return renderError(c, http.StatusNotFound, "patient not found")
	}
	return c.Redirect(http.StatusFound, "/patients")
}

func (h *Handler) deletePatient(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid patient id")
	}
	if _, err := h.patients.Delete(c.Request().Context(), id); err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/patients")
}

func (h *Handler) patientDetails(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid patient id")
	}
	ctx := c.Request().Context()
	p, err := h.patients.Get(ctx, id)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	if p == nil {
		return renderError(c, http.StatusNotFound, "patient not found")
	}
	appts, err := h.appointments.ListByPatient(ctx, id)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	meds, err := h.medications.ListByPatient(ctx, id)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "patient_details.html", map[string]interface{}{
		"Patient":      p,
		"Appointments": appts,
		"Medications":  meds,
	})
}
