package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"record-management-api/internal/model"
)

type appointmentRequest struct {
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
}

// CreateAppointment stores whatever it is given; the date is an opaque
// string with no calendar validation.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	apt := &model.Appointment{
		PatientName: req.PatientName,
		DoctorName:  req.DoctorName,
		Date:        req.Date,
	}
	if err := h.store.CreateAppointment(c.Request.Context(), apt); err != nil {
		detail(c, http.StatusInternalServerError, "Internal error")
		return
	}

	c.JSON(http.StatusOK, apt)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	apts, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		detail(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, apts)
}

// DeleteAppointment reports success whether or not the id was present.
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusBadRequest, "Invalid appointment id")
		return
	}
	if err := h.store.DeleteAppointment(c.Request.Context(), id); err != nil {
		detail(c, http.StatusInternalServerError, "Internal error")
		return
	}
	c.Status(http.StatusOK)
}
