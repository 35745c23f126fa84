package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carebase/carebase/internal/domain/doctor"
	"github.com/carebase/carebase/internal/domain/medication"
	"github.com/carebase/carebase/internal/domain/patient"
	"github.com/carebase/carebase/pkg/pagination"
)

func (h *Handler) registerMedicationRoutes(e *echo.Echo, base string) {
	g := e.Group(base)
	g.GET("", h.listMedications(base))
	g.GET("/add", h.newMedicationForm(base))
	g.POST("/save", h.saveMedication(base))
	g.GET("/update/:id", h.editMedicationForm(base))
	g.POST("/update/:id", h.updateMedication(base))
	g.POST("/delete/:id", h.deleteMedication(base))
	g.GET("/details/:id", h.medicationDetails(base))
}

type medicationRow struct {
	*medication.Medication
	PatientName string
	DoctorName  string
}

type medicationFormData struct {
	Action     string
	Medication *medication.Medication
	Patients   []*patient.Patient
	Doctors    []*doctor.Doctor
	Error      string
}

func (h *Handler) medicationRows(c echo.Context, meds []*medication.Medication) ([]medicationRow, error) {
	patientNames, doctorNames, err := h.lookupNames(c)
	if err != nil {
		return nil, err
	}
	rows := make([]medicationRow, 0, len(meds))
	for _, m := range meds {
		rows = append(rows, medicationRow{
			Medication:  m,
			PatientName: patientNames[m.PatientID],
			DoctorName:  doctorNames[m.DoctorID],
		})
	}
	return rows, nil
}

func (h *Handler) listMedications(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		pg := pagination.FromContext(c)
		meds, total, err := h.medications.List(c.Request().Context(), pg.Limit, pg.Offset)
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		rows, err := h.medicationRows(c, meds)
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "medications.html", listPage{
			Base: base, Items: rows, Params: pg, Total: total,
		})
	}
}

func (h *Handler) medicationFormData(c echo.Context, base string, m *medication.Medication, errMsg string) (medicationFormData, error) {
	ctx := c.Request().Context()
	patients, _, err := h.patients.List(ctx, pagination.MaxLimit, 0)
	if err != nil {
		return medicationFormData{}, err
	}
	doctors, _, err := h.doctors.List(ctx, pagination.MaxLimit, 0)
	if err != nil {
		return medicationFormData{}, err
	}
	action := base + "/save"
	if m.ID != 0 {
		action = fmt.Sprintf("%s/update/%d", base, m.ID)
	}
	return medicationFormData{
		Action:     action,
		Medication: m,
		Patients:   patients,
		Doctors:    doctors,
		Error:      errMsg,
	}, nil
}

func (h *Handler) newMedicationForm(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := h.medicationFormData(c, base, &medication.Medication{}, "")
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "medication_form.html", data)
	}
}

func medicationFromForm(c echo.Context) *medication.Medication {
	patientID, _ := strconv.ParseInt(c.FormValue("patient_id"), 10, 64)
	doctorID, _ := strconv.ParseInt(c.FormValue("doctor_id"), 10, 64)
	return &medication.Medication{
		Name:      c.FormValue("name"),
		Dosage:    optional(c.FormValue("dosage")),
		Frequency: c.FormValue("frequency"),
		PatientID: patientID,
		DoctorID:  doctorID,
	}
}

func (h *Handler) saveMedication(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := medicationFromForm(c)
		if err := h.medications.Create(c.Request().Context(), m); err != nil {
			data, ferr := h.medicationFormData(c, base, m, err.Error())
			if ferr != nil {
				return renderError(c, http.StatusInternalServerError, ferr.Error())
			}
			return c.Render(http.StatusBadRequest, "medication_form.html", data)
		}
		return c.Redirect(http.StatusFound, base)
	}
}

func (h *Handler) editMedicationForm(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderError(c, http.StatusBadRequest, "invalid medication id")
		}
		m, err := h.medications.Get(c.Request().Context(), id)
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		if m == nil {
			return renderError(c, http.StatusNotFound, "medication not found")
		}
		data, err := h.medicationFormData(c, base, m, "")
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "medication_form.html", data)
	}
}

func (h *Handler) updateMedication(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderError(c, http.StatusBadRequest, "invalid medication id")
		}
		in := medicationFromForm(c)
		m, err := h.medications.Update(c.Request().Context(), id, in)
		if err != nil {
			in.ID = id
			data, ferr := h.medicationFormData(c, base, in, err.Error())
			if ferr != nil {
				return renderError(c, http.StatusInternalServerError, ferr.Error())
			}
			return c.Render(http.StatusBadRequest, "medication_form.html", data)
		}
		if m == nil {
			return renderError(c, http.StatusNotFound, "medication not found")
		}
		return c.Redirect(http.StatusFound, base)
	}
}

func (h *Handler) deleteMedication(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderError(c, http.StatusBadRequest, "invalid medication id")
		}
		if _, err := h.medications.Delete(c.Request().Context(), id); err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Redirect(http.StatusFound, base)
	}
}

func (h *Handler) medicationDetails(base string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return renderError(c, http.StatusBadRequest, "invalid medication id")
		}
		m, err := h.medications.Get(c.Request().Context(), id)
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		if m == nil {
			return renderError(c, http.StatusNotFound, "medication not found")
		}
		rows, err := h.medicationRows(c, []*medication.Medication{m})
		if err != nil {
			return renderError(c, http.StatusInternalServerError, err.Error())
		}
		return c.Render(http.StatusOK, "medication_details.html", map[string]interface{}{
			"Base":       base,
			"Medication": rows[0],
		})
	}
}
