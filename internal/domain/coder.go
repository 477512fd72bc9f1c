// Package domain contains the core entities of the healthy coder app.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGender is returned when a gender string is not recognised.
var ErrUnknownGender = errors.New("unknown gender")

// Gender of a coder. The zero value means it was not recorded.
type Gender string

const (
	// GenderUnspecified means no gender was recorded.
	GenderUnspecified Gender = ""
	// Male selects the male BMR constants.
	Male Gender = "male"
	// Female selects the female BMR constants.
	Female Gender = "female"
)

// ParseGender parses "male" or "female", ignoring case and surrounding space.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}
	return GenderUnspecified, fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

// String returns the gender name, or "unspecified" for the zero value.
func (g Gender) String() string {
	if g == GenderUnspecified {
		return "unspecified"
	}
	return string(g)
}

// Coder is a tracked person. Height is in meters and weight in kilograms.
// Age is in years; zero means it was not recorded.
type Coder struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Age    int     `json:"age,omitempty"`
	Gender Gender  `json:"gender,omitempty"`
}

// NewCoder creates a coder with only the measurements needed for BMI.
func NewCoder(height, weight float64) Coder {
	return Coder{Height: height, Weight: weight}
}

// NewCoderWithProfile creates a coder with the full profile used for diet planning.
func NewCoderWithProfile(height, weight float64, age int, gender Gender) Coder {
	return Coder{Height: height, Weight: weight, Age: age, Gender: gender}
}

// CoderFromMeasurements builds a coder from measurements taken in any supported
// unit ("m", "cm", "in" for height; "kg", "lb" for weight).
func CoderFromMeasurements(height float64, heightUnit string, weight float64, weightUnit string) (Coder, error) {
	if !isLengthUnit(heightUnit) {
		return Coder{}, fmt.Errorf("height unit must be \"m\", \"cm\" or \"in\", got %q", heightUnit)
	}
	if weightUnit != "kg" && weightUnit != "lb" {
		return Coder{}, fmt.Errorf("weight unit must be \"kg\" or \"lb\", got %q", weightUnit)
	}
	return NewCoder(ConvertLength(height, heightUnit, "m"), ConvertWeight(weight, weightUnit, "kg")), nil
}
