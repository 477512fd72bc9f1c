// Package app holds the BMI and diet planning logic.
package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"healthycoder/internal/domain"
)

// OverweightThreshold is the BMI at and above which a diet is recommended.
const OverweightThreshold = 25.0

var (
	// ErrDivisionByZero indicates a BMI was requested for a zero height.
	ErrDivisionByZero = errors.New("division by zero: height is 0")
	// ErrInvalidHeight indicates a negative, NaN or infinite height.
	ErrInvalidHeight = errors.New("height must be a finite number > 0")
	// ErrInvalidWeight indicates a weight that is not a finite number > 0.
	ErrInvalidWeight = errors.New("weight must be a finite number > 0")
)

// BMI returns weight / height².
func BMI(weight, height float64) (float64, error) {
	if height == 0 {
		return 0, ErrDivisionByZero
	}
	if !isPositive(height) {
		return 0, ErrInvalidHeight
	}
	if !isPositive(weight) {
		return 0, ErrInvalidWeight
	}
	return weight / (height * height), nil
}

// IsDietRecommended reports whether the unrounded BMI is at or above
// OverweightThreshold.
func IsDietRecommended(weight, height float64) (bool, error) {
	bmi, err := BMI(weight, height)
	if err != nil {
		return false, err
	}
	return bmi >= OverweightThreshold, nil
}

// FindCoderWithWorstBMI returns a copy of the coder with the highest BMI, or
// nil when coders is empty. On ties the earliest coder in the slice wins.
func FindCoderWithWorstBMI(coders []domain.Coder) (*domain.Coder, error) {
	if len(coders) == 0 {
		return nil, nil
	}

	worst := -1
	var worstBMI float64
	for i, c := range coders {
		bmi, err := BMI(c.Weight, c.Height)
		if err != nil {
			return nil, fmt.Errorf("coder %d: %w", i, err)
		}
		if worst == -1 || bmi > worstBMI {
			worst = i
			worstBMI = bmi
		}
	}

	found := coders[worst]
	return &found, nil
}

// BMIScores returns the BMI of every coder rounded half-up to two decimals, in
// input order.
func BMIScores(coders []domain.Coder) ([]float64, error) {
	scores := make([]float64, 0, len(coders))
	for i, c := range coders {
		bmi, err := BMI(c.Weight, c.Height)
		if err != nil {
			return nil, fmt.Errorf("coder %d: %w", i, err)
		}
		scores = append(scores, roundHalfUp(bmi, 2))
	}
	return scores, nil
}

// isPositive reports whether v is finite and > 0. NaN fails the comparison.
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// BMICategory returns the WHO label for a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < OverweightThreshold:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// roundHalfUp rounds v to the given number of decimal places, rounding ties
// away from zero. It works on the shortest decimal form of v so that a value
// printed as 1.005 rounds to 1.01 rather than following its binary expansion.
func roundHalfUp(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) <= places {
		return v
	}
	// Past ~15 significant digits the decimal form carries no extra precision.
	if len(intPart)+places > 15 {
		p := math.Pow10(places)
		return math.Round(v*p) / p
	}

	n, err := strconv.ParseInt(intPart+frac[:places], 10, 64)
	if err != nil {
		p := math.Pow10(places)
		return math.Round(v*p) / p
	}
	if frac[places] >= '5' {
		n++
	}
	r := float64(n) / math.Pow10(places)
	if v < 0 {
		return -r
	}
	return r
}
