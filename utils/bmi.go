package utils

import "math"

// BMIClass pairs the category label with a rough severity tag for the UI.
type BMIClass struct {
	Label    string `json:"label"`
	Severity string `json:"severity,omitempty"`
}

// CalculateBMI expects weight in kilograms and height in centimeters and
// returns kg/m² rounded to one decimal. ok is false for non-positive
// inputs, where BMI is undefined.
func CalculateBMI(weightKg, heightCm float64) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, true
}

// ClassifyBMI buckets a BMI value. Pass ok=false (undefined BMI) to get the
// "Unknown" class.
func ClassifyBMI(bmi float64, ok bool) BMIClass {
	if !ok {
		return BMIClass{Label: "Unknown"}
	}
	switch {
	case bmi < 18.5:
		return BMIClass{Label: "Underweight", Severity: "caution"}
	case bmi < 25.0:
		return BMIClass{Label: "Healthy", Severity: "ok"}
	case bmi < 30.0:
		return BMIClass{Label: "Overweight", Severity: "caution"}
	default:
		return BMIClass{Label: "Obese", Severity: "high"}
	}
}
