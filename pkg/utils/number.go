package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários para centavos
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PriceBetween sorteia um preço em [min, max) já arredondado para centavos
func PriceBetween(rnd func() float64, min, max float64) float64 {
	return RoundWithTwoDecimalPlace(min + rnd()*(max-min))
}
