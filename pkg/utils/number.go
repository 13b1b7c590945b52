package utils

import "math"

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithThreeDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1000) / 1000
}

func RoundWithFourDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10000) / 10000
}

// RoundToWholeUnits rounds monetary amounts for display.
func RoundToWholeUnits(f float64) float64 {
	return math.Round(f)
}
