package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carebase/carebase/internal/domain/doctor"
	"github.com/carebase/carebase/pkg/pagination"
)

func (h *Handler) registerDoctorRoutes(e *echo.Echo) {
	e.GET("/doctors", h.listDoctors)
	e.GET("/doctors/add", h.newDoctorForm)
	e.POST("/doctors/save", h.saveDoctor)
	e.GET("/doctors/update/:id", h.editDoctorForm)
	e.POST("/doctors/update/:id", h.updateDoctor)
	e.POST("/doctors/delete/:id", h.deleteDoctor)
	e.GET("/doctors/details/:id", h.doctorDetails)
}

type doctorFormData struct {
	Action string
	Doctor *doctor.Doctor
	Error  string
}

func (h *Handler) listDoctors(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.doctors.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "doctors.html", listPage{
		Base: "/doctors", Items: items, Params: pg, Total: total,
	})
}

func (h *Handler) newDoctorForm(c echo.Context) error {
	return c.Render(http.StatusOK, "doctor_form.html", doctorFormData{
		Action: "/doctors/save",
		Doctor: &doctor.Doctor{},
	})
}

func doctorFromForm(c echo.Context) *doctor.Doctor {
	return &doctor.Doctor{
		FirstName:      c.FormValue("first_name"),
		LastName:       c.FormValue("last_name"),
		Email:          c.FormValue("email"),
		PhoneNumber:    optional(c.FormValue("phone_number")),
		Specialization: optional(c.FormValue("specialization")),
		Hospital:       optional(c.FormValue("hospital")),
		Address:        optional(c.FormValue("address")),
	}
}

func (h *Handler) saveDoctor(c echo.Context) error {
	d := doctorFromForm(c)
	if err := h.doctors.Create(c.Request().Context(), d); err != nil {
		return c.Render(http.StatusBadRequest, "doctor_form.html", doctorFormData{
			Action: "/doctors/save",
			Doctor: d,
			Error:  err.Error(),
		})
	}
	return c.Redirect(http.StatusFound, "/doctors")
}

func (h *Handler) editDoctorForm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid doctor id")
	}
	d, err := h.doctors.Get(c.Request().Context(), id)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	if d == nil {
		return renderError(c, http.StatusNotFound, "doctor not found")
	}
	return c.Render(http.StatusOK, "doctor_form.html", doctorFormData{
		Action: fmt.Sprintf("/doctors/update/%d", id),
		Doctor: d,
	})
}

func (h *Handler) updateDoctor(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid doctor id")
	}
	in := doctorFromForm(c)
	d, err := h.doctors.Update(c.Request().Context(), id, in)
	if err != nil {
		in.ID = id
		return c.Render(http.StatusBadRequest, "doctor_form.html", doctorFormData{
			Action: fmt.Sprintf("/doctors/update/%d", id),
			Doctor: in,
			Error:  err.Error(),
		})
	}
	if d == nil {
		return renderError(c, http.StatusNotFound, "doctor not found")
	}
	return c.Redirect(http.StatusFound, "/doctors")
}

func (h *Handler) deleteDoctor(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid doctor id")
	}
	if _, err := h.doctors.Delete(c.Request().Context(), id); err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/doctors")
}

func (h *Handler) doctorDetails(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return renderError(c, http.StatusBadRequest, "invalid doctor id")
	}
	ctx := c.Request().Context()
	d, err := h.doctors.Get(ctx, id)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	if d == nil {
		return renderError(c, http.StatusNotFound, "doctor not found")
	}
	appts, err := h.appointments.ListByDoctor(ctx, id)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	meds, err := h.medications.ListByDoctor(ctx, id)
	if err != nil {
		return renderError(c, http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "doctor_details.html", map[string]interface{}{
		"Doctor":       d,
		"Appointments": appts,
		"Medications":  meds,
	})
}
