package gym

import (
	"errors"
	"net/http"

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

// Info godoc
// @Summary      Gym profile
// @Description  Returns the gym name, contact details and opening hours.
// @Tags         gym
// @Produce      json
// @Success      200  {object}  Settings
// @Failure      404  {object}  gin.H
// @Router       /gym [get]
func (h *Handler) Info(c *gin.Context) {
	settings, err := h.repo.Get(c.Request.Context())
	if errors.Is(err, ErrSettingsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gym settings not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gym settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update gym profile
// @Description  Replaces the gym profile and opening hours. Admin only.
// @Tags         gym
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateSettingsRequest  true  "Gym settings"
// @Success      200      {object}  Settings
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /admin/gym [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	openTime, err := schedule.ParseTimeOfDay(req.OpenTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid open time, use HH:MM"})
		return
	}
	closeTime, err := schedule.ParseTimeOfDay(req.CloseTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid close time, use HH:MM"})
		return
	}
	if openTime >= closeTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Open time must be before close time"})
		return
	}

	current, err := h.repo.Get(c.Request.Context())
	if errors.Is(err, ErrSettingsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gym settings not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gym settings"})
		return
	}

	current.GymName = req.GymName
	current.OpenTime = openTime
	current.CloseTime = closeTime
	current.Address = req.Address
	current.PhoneNumber = req.PhoneNumber
	current.Email = req.Email
	current.Description = req.Description
	current.LogoURL = req.LogoURL

	if err := h.repo.Update(c.Request.Context(), current); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gym settings"})
		return
	}

	c.JSON(http.StatusOK, current)
}
