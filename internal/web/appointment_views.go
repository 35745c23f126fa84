package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carebase/carebase/internal/domain/appointment"
	"github.com/carebase/carebase/internal/domain/doctor"
	"github.com/carebase/carebase/internal/domain/patient"
	"github.com/carebase/carebase/pkg/pagination"
)

// Appointment pages are mounted twice, once per facing, so every handler
// is a closure over the base prefix it was registered under.
func (h *Handler) registerAppointmentRoutes(e *echo.Echo, base string) {
	g := e.Group(base)
	g.GET("", h.listAppointments(base))
	g.GET("/add", h.newAppointmentForm(base))
	g.POST("/save", h.saveAppointment(base))
	g.GET("/update/:id", h.editAppointmentForm(base))
	g.POST("/update/:id", h.updateAppointment(base))
	g.POST("/delete/:id", h.deleteAppointment(base))
	g.GET("/details/:id", h.appointmentDetails(base))
}

type appointmentRow struct {
	*appointment.Appointment
	PatientName string
	DoctorName  string
}

type appointmentFormData struct {
	Action      string
	Appointment *appointment.Appointment
	Patients    []*patient.Patient
	Doctors     []*doctor.Doctor
	Error       string
}

func (h *Handler) appointmentRows(c echo.Context, appts []*appointment.Appointment) ([]appointmentRow, error) {
	patientNames, doctorNames, err := h.lookupNames(c)
	if err != nil {
		return nil, err
	}
	rows := make([]appointmentRow, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, appointmentRow{
			Appointment: a,
			PatientName: patientNames[a.PatientID],
			DoctorName:  doctorNames[a.DoctorID],
		})
	}
	return rows, nil
}

func (h *Handler) listAppointments(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		pg := pagination.FromContext(c)
		appts, total, err := h.appointments.List(c.Request().Context(), pg.Limit, pg.Offset)
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		rows, err := h.appointmentRows(c, appts)
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "appointments.html", listPage{
			Base: base, Items: rows, Params: pg, Total: total,
		})
	}
}

func (h *Handler) appointmentFormData(c echo.Context, base string, a *appointment.Appointment, errMsg string) (appointmentFormData, error) {
	ctx := c.Request().Context()
	patients, _, err := h.patients.List(ctx, pagination.MaxLimit, 0)
	if err != nil {
		return appointmentFormData{}, err
	}
	doctors, _, err := h.doctors.List(ctx, pagination.MaxLimit, 0)
	if err != nil {
		return appointmentFormData{}, err
	}
	action := base + "/save"
	if a.ID != 0 {
		action = fmt.Sprintf("%s/update/%d", base, a.ID)
	}
	return appointmentFormData{
		Action:      action,
		Appointment: a,
		Patients:    patients,
		Doctors:     doctors,
		Error:       errMsg,
	}, nil
}

func (h *Handler) newAppointmentForm(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := h.appointmentFormData(c, base, &appointment.Appointment{}, "")
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "appointment_form.html", data)
	}
}

func appointmentFromForm(c echo.Context) *appointment.Appointment {
	patientID, _ := strconv.ParseInt(c.FormValue("patient_id"), 10, 64)
	doctorID, _ := strconv.ParseInt(c.FormValue("doctor_id"), 10, 64)
	return &appointment.Appointment{
		Date:      c.FormValue("date"),
		Time:      c.FormValue("time"),
		Reason:    optional(c.FormValue("reason")),
		PatientID: patientID,
		DoctorID:  doctorID,
	}
}

func (h *Handler) saveAppointment(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		a := appointmentFromForm(c)
		if err := h.appointments.Create(c.Request().Context(), a); err != nil {
			data, ferr := h.appointmentFormData(c, base, a, err.Error())
			if ferr != nil {
				return renderError(c, http.StatusInternalServerError, ferr.Error())
			}
			return c.Render(http.StatusBadRequest, "appointment_form.html", data)
		}
		return c.Redirect(http.StatusFound, base)
	}
}

func (h *Handler) editAppointmentForm(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderError(c, http.StatusBadRequest, "invalid appointment id")
		}
		a, err := h.appointments.Get(c.Request().Context(), id)
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		if a == nil {
			return renderError(c, http.StatusNotFound, "appointment not found")
		}
		data, err := h.appointmentFormData(c, base, a, "")
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "appointment_form.html", data)
	}
}

func (h *Handler) updateAppointment(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderError(c, http.StatusBadRequest, "invalid appointment id")
		}
		in := appointmentFromForm(c)
		a, err := h.appointments.Update(c.Request().Context(), id, in)
		if err != nil {
			in.ID = id
			data, ferr := h.appointmentFormData(c, base, in, err.Error())
			if ferr != nil {
				return renderError(c, http.StatusInternalServerError, ferr.Error())
			}
			return c.Render(http.StatusBadRequest, "appointment_form.html", data)
		}
		if a == nil {
			return renderError(c, http.StatusNotFound, "appointment not found")
		}
		return c.Redirect(http.StatusFound, base)
	}
}

func (h *Handler) deleteAppointment(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderError(c, http.StatusBadRequest, "invalid appointment id")
		}
		if _, err := h.appointments.Delete(c.Request().Context(), id); err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Redirect(http.StatusFound, base)
	}
}

func (h *Handler) appointmentDetails(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderError(c, http.StatusBadRequest, "invalid appointment id")
		}
		a, err := h.appointments.Get(c.Request().Context(), id)
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		if a == nil {
			return renderError(c, http.StatusNotFound, "appointment not found")
		}
		rows, err := h.appointmentRows(c, []*appointment.Appointment{a})
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "appointment_details.html", map[string]interface{}{
			"Base":        base,
			"Appointment": rows[0],
		})
	}
}
