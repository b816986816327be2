package report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Bal1m/FitnessCenterProject/internal/trainer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Dashboard godoc
// @Summary      Dashboard statistics
// @Description  Returns totals, appointment status breakdown, revenue and recent bookings. Admin only.
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  DashboardStats
// @Failure      500  {object}  gin.H
// @Router       /admin/reports/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// TrainerReports godoc
// @Summary      Trainer staffing report
// @Description  Lists active trainers with their services and weekly availability. Admin only.
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   TrainerReport
// @Failure      500  {object}  gin.H
// @Router       /admin/reports/trainers [get]
func (h *Handler) TrainerReports(c *gin.Context) {
	reports, err := h.service.TrainerReports(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build trainer report"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// TrainerReport godoc
// @Summary      Single trainer report
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {object}  TrainerReport
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /admin/reports/trainers/{trainerID} [get]
func (h *Handler) TrainerReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trainer ID"})
		return
	}

	report, err := h.service.TrainerReport(c.Request.Context(), id)
	if errors.Is(err, trainer.ErrTrainerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build trainer report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
