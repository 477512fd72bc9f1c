package domain

const (
	kgToLb = 2.2046226218
	mToCm  = 100.0
	inToCm = 2.54
)

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == "kg" && to == "lb" {
		return v * kgToLb
	}
	if from == "lb" && to == "kg" {
		return v / kgToLb
	}
	return v
}

// ConvertLength converts a length between "m", "cm" and "in".
// Returns v unchanged if from == to or if either unit is unrecognised.
func ConvertLength(v float64, from, to string) float64 {
	if from == to || !isLengthUnit(from) || !isLengthUnit(to) {
		return v
	}
	cm := v
	switch from {
	case "m":
		cm = v * mToCm
	case "in":
		cm = v * inToCm
	}
	switch to {
	case "m":
		return cm / mToCm
	case "in":
		return cm / inToCm
	}
	return cm
}

func isLengthUnit(u string) bool {
	return u == "m" || u == "cm" || u == "in"
}
