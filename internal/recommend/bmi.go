package recommend

import "math"

const (
	CategoryUnderweight = "underweight"
	CategoryNormal      = "normal"
	CategoryOverweight  = "overweight"
	CategoryObese       = "obese"
)

// BMI computes body mass index from centimeters and kilograms, rounded
// to one decimal place.
func BMI(heightCM, weightKG float64) float64 {
	meters := heightCM / 100
	bmi := weightKG / (meters * meters)
	return math.Round(bmi*10) / 10
}

// Category maps a BMI value onto the standard WHO bands.
func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
