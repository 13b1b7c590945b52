package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithOneDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "rounds half up", input: 66.66666, expected: 66.7},
		{name: "rounds down", input: 2.34, expected: 2.3},
		{name: "zero stays zero", input: 0, expected: 0},
		{name: "negative values", input: -49.99, expected: -50.0},
		{name: "already exact", input: 2.5, expected: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithOneDecimalPlace(tt.input))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "rounds half up", input: 10.606, expected: 10.61},
		{name: "rounds down", input: 133.333, expected: 133.33},
		{name: "zero stays zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}

func TestRoundWithThreeDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "confidence style value", input: 0.77777, expected: 0.778},
		{name: "rounds down", input: 0.63636, expected: 0.636},
		{name: "zero stays zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithThreeDecimalPlace(tt.input))
		})
	}
}

func TestRoundWithFourDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "support style value", input: 0.046666, expected: 0.0467},
		{name: "small value survives", input: 0.00005, expected: 0.0001},
		{name: "zero stays zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithFourDecimalPlace(tt.input))
		})
	}
}

func TestRoundToWholeUnits(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "rounds half up", input: 1234.56, expected: 1235.0},
		{name: "rounds down", input: 2000.49, expected: 2000.0},
		{name: "negative values", input: -10.5, expected: -11.0},
		{name: "zero stays zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundToWholeUnits(tt.input))
		})
	}
}
