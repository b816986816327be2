package service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// ListActive godoc
// @Summary      List active services
// @Description  Returns the bookable service catalog.
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Service
// @Failure      500  {object}  gin.H
// @Router       /services [get]
func (h *Handler) ListActive(c *gin.Context) {
	services, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// ListAll godoc
// @Summary      List all services
// @Description  Returns every service including inactive ones. Admin only.
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Service
// @Failure      500  {object}  gin.H
// @Router       /admin/services [get]
func (h *Handler) ListAll(c *gin.Context) {
	services, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// Create godoc
// @Summary      Create service
// @Description  Adds a new service to the catalog. Admin only.
// @Tags         services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateServiceRequest  true  "Service data"
// @Success      201      {object}  Service
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/services [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	svc, err := h.repo.Create(c.Request.Context(), req.Name, req.Description, req.DurationMinutes, req.PriceCents, isActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// Update godoc
// @Summary      Update service
// @Description  Edits a service. Existing appointments keep their frozen price and end time.
// @Tags         services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        serviceID  path      int                   true  "Service ID"
// @Param        request    body      CreateServiceRequest  true  "Service data"
// @Success      200        {object}  Service
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /admin/services/{serviceID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrServiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMinutes = req.DurationMinutes
	svc.PriceCents = req.PriceCents
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := h.repo.Update(c.Request.Context(), svc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// Delete godoc
// @Summary      Delete service
// @Description  Removes a service from the catalog. Admin only.
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Param        serviceID  path      int  true  "Service ID"
// @Success      200        {object}  gin.H
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /admin/services/{serviceID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	err = h.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, ErrServiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
