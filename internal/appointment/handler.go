package appointment

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Bal1m/FitnessCenterProject/internal/auth"
	"github.com/Bal1m/FitnessCenterProject/internal/metrics"
	"github.com/Bal1m/FitnessCenterProject/internal/schedule"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// AvailableSlots godoc
// @Summary      Available booking slots
// @Description  Returns the bookable start times for a trainer, service and date.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        trainer_id  query     int     true  "Trainer ID"
// @Param        service_id  query     int     true  "Service ID"
// @Param        date        query     string  true  "Date (YYYY-MM-DD)"
// @Success      200         {array}   schedule.Slot
// @Failure      400         {object}  gin.H
// @Failure      500         {object}  gin.H
// @Router       /slots [get]
func (h *Handler) AvailableSlots(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Query("trainer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer_id"})
		return
	}

	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service_id"})
		return
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, use YYYY-MM-DD"})
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), trainerID, serviceID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// Create godoc
// @Summary      Book appointment
// @Description  Creates a pending appointment for the authenticated member.
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateAppointmentRequest  true  "Booking data"
// @Success      201      {object}  Appointment
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      422      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /appointments [post]
func (h *Handler) Create(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, use YYYY-MM-DD"})
		return
	}

	startTime, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start time, use HH:MM"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, CreateInput{
		TrainerID: req.TrainerID,
		ServiceID: req.ServiceID,
		Date:      date,
		StartTime: startTime,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		case errors.Is(err, ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		case errors.Is(err, ErrTimeConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "The trainer already has an appointment at the selected time, please pick another slot"})
		case errors.Is(err, ErrTrainerUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "The trainer is not available at the selected date and time"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		}
		return
	}

	metrics.RecordAppointmentCreated()
	c.JSON(http.StatusCreated, created)
}

// ListMine godoc
// @Summary      List my appointments
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   AppointmentWithDetails
// @Failure      500  {object}  gin.H
// @Router       /appointments [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	appointments, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// Details godoc
// @Summary      Appointment details
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  AppointmentWithDetails
// @Failure      400            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      500            {object}  gin.H
// @Router       /appointments/{appointmentID} [get]
func (h *Handler) Details(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	a, err := h.service.GetForUser(c.Request.Context(), id, userID)
	if errors.Is(err, ErrAppointmentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// Cancel godoc
// @Summary      Cancel appointment
// @Description  Cancels one of the caller's pending or approved future appointments.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  gin.H
// @Failure      400            {object}  gin.H
// @Failure      403            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      500            {object}  gin.H
// @Router       /appointments/{appointmentID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	err = h.service.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only cancel your own appointments"})
		case errors.Is(err, ErrPastAppointment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Past appointments cannot be cancelled"})
		case errors.Is(err, ErrNotCancellable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This appointment cannot be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		}
		return
	}

	metrics.RecordAppointmentCancellation()
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}

// ListAll godoc
// @Summary      List all appointments
// @Description  Returns every appointment with member, trainer and service details. Admin only.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   AppointmentWithDetails
// @Failure      500  {object}  gin.H
// @Router       /admin/appointments [get]
func (h *Handler) ListAll(c *gin.Context) {
	appointments, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// Approve godoc
// @Summary      Approve appointment
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  gin.H
// @Failure      400            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      500            {object}  gin.H
// @Router       /admin/appointments/{appointmentID}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	h.transition(c, StatusApproved, h.service.Approve)
}

// Reject godoc
// @Summary      Reject appointment
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  gin.H
// @Failure      400            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      500            {object}  gin.H
// @Router       /admin/appointments/{appointmentID}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	h.transition(c, StatusRejected, h.service.Reject)
}

// Complete godoc
// @Summary      Complete appointment
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  gin.H
// @Failure      400            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      500            {object}  gin.H
// @Router       /admin/appointments/{appointmentID}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, StatusCompleted, h.service.Complete)
}

func (h *Handler) transition(c *gin.Context, status Status, apply func(ctx context.Context, id int) error) {
	id, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	err = apply(c.Request.Context(), id)
	if errors.Is(err, ErrAppointmentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	metrics.RecordAppointmentTransition(string(status))
	c.JSON(http.StatusOK, gin.H{"message": "Appointment " + status.Label()})
}

// Delete godoc
// @Summary      Delete appointment
// @Description  Hard-deletes an appointment. Admin only.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  gin.H
// @Failure      400            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      500            {object}  gin.H
// @Router       /admin/appointments/{appointmentID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	err = h.service.Remove(c.Request.Context(), id)
	if errors.Is(err, ErrAppointmentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
