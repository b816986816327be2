package api

type ErrorResponse struct {
	Error string `json:"error" example:"appointment not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Appointment Approved"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
