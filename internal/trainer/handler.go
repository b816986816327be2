package trainer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Bal1m/FitnessCenterProject/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// ListForService godoc
// @Summary      List trainers for service
// @Description  Returns active trainers offering the given service, for the booking form dropdown.
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Param        serviceID  path      int  true  "Service ID"
// @Success      200        {array}   TrainerOption
// @Failure      400        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /services/{serviceID}/trainers [get]
func (h *Handler) ListForService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	options, err := h.repo.ListForService(c.Request.Context(), serviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, options)
}

// ListAll godoc
// @Summary      List trainers
// @Description  Returns all trainers with their offered service ids. Admin only.
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   TrainerWithServices
// @Failure      500  {object}  gin.H
// @Router       /admin/trainers [get]
func (h *Handler) ListAll(c *gin.Context) {
	trainers, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trainers"})
		return
	}

	result := make([]TrainerWithServices, 0, len(trainers))
	for _, t := range trainers {
		ids, err := h.repo.ListServiceIDs(c.Request.Context(), t.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trainer services"})
			return
		}
		result = append(result, TrainerWithServices{Trainer: t, ServiceIDs: ids})
	}

	c.JSON(http.StatusOK, result)
}

// Create godoc
// @Summary      Create trainer
// @Description  Adds a trainer and assigns the offered services. Admin only.
// @Tags         trainers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTrainerRequest  true  "Trainer data"
// @Success      201      {object}  TrainerWithServices
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/trainers [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := h.repo.Create(c.Request.Context(), &Trainer{
		FullName:       req.FullName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		ImageURL:       req.ImageURL,
		IsActive:       isActive,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trainer"})
		return
	}

	if len(req.ServiceIDs) > 0 {
		if err := h.repo.SetServices(c.Request.Context(), created.ID, req.ServiceIDs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign services"})
			return
		}
	}

	c.JSON(http.StatusCreated, TrainerWithServices{Trainer: *created, ServiceIDs: req.ServiceIDs})
}

// Update godoc
// @Summary      Update trainer
// @Description  Edits a trainer and replaces the offered-service set. Deactivating a trainer keeps existing appointments. Admin only.
// @Tags         trainers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        trainerID  path      int                   true  "Trainer ID"
// @Param        request    body      CreateTrainerRequest  true  "Trainer data"
// @Success      200        {object}  TrainerWithServices
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /admin/trainers/{trainerID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}

	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrTrainerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	t.FullName = req.FullName
	t.Email = req.Email
	t.PhoneNumber = req.PhoneNumber
	t.Specialization = req.Specialization
	t.Bio = req.Bio
	t.ImageURL = req.ImageURL
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := h.repo.Update(c.Request.Context(), t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trainer"})
		return
	}

	if err := h.repo.SetServices(c.Request.Context(), t.ID, req.ServiceIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign services"})
		return
	}

	c.JSON(http.StatusOK, TrainerWithServices{Trainer: *t, ServiceIDs: req.ServiceIDs})
}

// Delete godoc
// @Summary      Delete trainer
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {object}  gin.H
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /admin/trainers/{trainerID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}

	err = h.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, ErrTrainerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trainer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted successfully"})
}

// ListAvailability godoc
// @Summary      List trainer availability
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {array}   Availability
// @Failure      400        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /admin/trainers/{trainerID}/availability [get]
func (h *Handler) ListAvailability(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}

	windows, err := h.repo.ListAvailability(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}

	c.JSON(http.StatusOK, windows)
}

// CreateAvailability godoc
// @Summary      Add availability window
// @Description  Adds a recurring weekly working window for a trainer. Admin only.
// @Tags         trainers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        trainerID  path      int                        true  "Trainer ID"
// @Param        request    body      CreateAvailabilityRequest  true  "Availability data"
// @Success      201        {object}  Availability
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /admin/trainers/{trainerID}/availability [post]
func (h *Handler) CreateAvailability(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start time, use HH:MM"})
		return
	}
	endTime, err := schedule.ParseTimeOfDay(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end time, use HH:MM"})
		return
	}
	if endTime <= startTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time"})
		return
	}

	if _, err := h.repo.GetByID(c.Request.Context(), trainerID); err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := h.repo.CreateAvailability(c.Request.Context(), &Availability{
		TrainerID: trainerID,
		DayOfWeek: req.DayOfWeek,
		StartTime: startTime,
		EndTime:   endTime,
		IsActive:  isActive,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create availability"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteAvailability godoc
// @Summary      Delete availability window
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Param        availabilityID  path      int  true  "Availability ID"
// @Success      200             {object}  gin.H
// @Failure      400             {object}  gin.H
// @Failure      404             {object}  gin.H
// @Failure      500             {object}  gin.H
// @Router       /admin/availability/{availabilityID} [delete]
func (h *Handler) DeleteAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("availabilityID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability ID"})
		return
	}

	err = h.repo.DeleteAvailability(c.Request.Context(), id)
	if errors.Is(err, ErrAvailabilityNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Availability not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted successfully"})
}
