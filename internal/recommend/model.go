package recommend

type RecommendationRequest struct {
	HeightCM float64 `json:"height_cm" binding:"required,min=100,max=250"`
	WeightKG float64 `json:"weight_kg" binding:"required,min=30,max=300"`
	Age      int     `json:"age" binding:"required,min=10,max=100"`
	Goal     string  `json:"goal" binding:"omitempty,max=100"`
}

type RecommendationResponse struct {
	BMI            float64 `json:"bmi"`
	Category       string  `json:"category"`
	Recommendation string  `json:"recommendation"`
	Source         string  `json:"source"`
}
