package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/Bal1m/FitnessCenterProject/internal/logger"
	"github.com/Bal1m/FitnessCenterProject/internal/metrics"
)

const (
	SourceGemini = "gemini"
	SourceRules  = "rules"
)

// Generator produces free-text advice from a prompt. *GeminiClient
// implements it; a nil Generator means rule-based answers only.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	generator Generator
}

func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// Recommend computes the BMI profile and produces a workout
// recommendation, preferring the AI model and falling back to the
// built-in rules when it is unavailable or fails.
func (s *Service) Recommend(ctx context.Context, req RecommendationRequest) *RecommendationResponse {
	bmi := BMI(req.HeightCM, req.WeightKG)
	category := Category(bmi)

	if s.generator != nil {
		text, err := s.generator.Generate(ctx, buildPrompt(req, bmi, category))
		if err == nil {
			metrics.RecordRecommendation(SourceGemini)
			return &RecommendationResponse{
				BMI:            bmi,
				Category:       category,
				Recommendation: strings.TrimSpace(text),
				Source:         SourceGemini,
			}
		}
		logger.Errorf("AI recommendation failed, using rules: %v", err)
	}

	metrics.RecordRecommendation(SourceRules)
	return &RecommendationResponse{
		BMI:            bmi,
		Category:       category,
		Recommendation: ruleRecommendation(category, req.Age, req.Goal),
		Source:         SourceRules,
	}
}

func buildPrompt(req RecommendationRequest, bmi float64, category string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a fitness coach at a gym. A member is %d years old, %.0f cm tall and weighs %.1f kg (BMI %.1f, %s).", req.Age, req.HeightCM, req.WeightKG, bmi, category)
	if req.Goal != "" {
		fmt.Fprintf(&b, " Their goal: %s.", req.Goal)
	}
	b.WriteString(" Suggest a weekly workout plan in 3-5 short sentences. Mention which of these services fits best: personal training, group fitness, yoga, swimming.")
	return b.String()
}

func ruleRecommendation(category string, age int, goal string) string {
	var b strings.Builder

	switch category {
	case CategoryUnderweight:
		b.WriteString("Focus on strength training 2-3 times a week with progressive overload, and pair it with a calorie surplus. Personal training sessions will help you build a safe routine.")
	case CategoryNormal:
		b.WriteString("Your weight is in a healthy range. A mix of 2 strength sessions and 2 cardio or group fitness classes a week will maintain it and improve overall conditioning.")
	case CategoryOverweight:
		b.WriteString("Combine 3 cardio sessions a week, such as swimming or group fitness, with 1-2 strength workouts. Consistency matters more than intensity at the start.")
	default:
		b.WriteString("Start with low-impact cardio like swimming 3 times a week and add light strength work under supervision. A personal trainer can tailor the load to your joints.")
	}

	if age >= 50 {
		b.WriteString(" Given your age, include mobility work such as yoga and allow extra recovery days.")
	}
	if goal != "" {
		b.WriteString(fmt.Sprintf(" Keep your goal (%s) in mind when picking class intensity.", goal))
	}

	return b.String()
}
