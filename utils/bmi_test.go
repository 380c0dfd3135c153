package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	bmi, ok := CalculateBMI(70, 175)
	assert.True(t, ok)
	assert.Equal(t, 22.9, bmi)

	_, ok = CalculateBMI(0, 175)
	assert.False(t, ok)

	_, ok = CalculateBMI(70, 0)
	assert.False(t, ok)

	_, ok = CalculateBMI(-70, 175)
	assert.False(t, ok)
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi   float64
		ok    bool
		label string
	}{
		{17.0, true, "Underweight"},
		{18.5, true, "Healthy"},
		{22.9, true, "Healthy"},
		{24.9, true, "Healthy"},
		{25.0, true, "Overweight"},
		{29.9, true, "Overweight"},
		{30.0, true, "Obese"},
		{42.0, true, "Obese"},
		{0, false, "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, ClassifyBMI(tt.bmi, tt.ok).Label, "bmi=%v", tt.bmi)
	}
}
