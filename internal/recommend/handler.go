package recommend

import (
	"net/http"

	"github.com/Bal1m/FitnessCenterProject/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Recommend godoc
// @Summary      Workout recommendation
// @Description  Computes BMI and returns a personalized workout suggestion.
// @Tags         recommendations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      RecommendationRequest  true  "Body measurements"
// @Success      200      {object}  RecommendationResponse
// @Failure      400      {object}  api.ValidationErrorResponse
// @Router       /ai/recommendation [post]
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError(err))
		return
	}

	c.JSON(http.StatusOK, h.service.Recommend(c.Request.Context(), req))
}
