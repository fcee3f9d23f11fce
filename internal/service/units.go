package service

import (
	"fmt"
	"strings"
)

const kgPerLb = 0.45359237

func convertWeightToKg(value float64, unit string) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	switch u := strings.ToLower(strings.TrimSpace(unit)); u {
	case "", "kg":
		return value, nil
	case "lb", "lbs":
		return value * kgPerLb, nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
}

func WeightFromKg(weightKg float64, unit string) (float64, error) {
	switch u := strings.ToLower(strings.TrimSpace(unit)); u {
	case "", "kg":
		return weightKg, nil
	case "lb", "lbs":
		return weightKg / kgPerLb, nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
}
