package domain

// Measurement is a value with an attached unit, as sent by the storefront.
type Measurement struct {
	// Value is the numeric measurement value.
	Value float64 `json:"value"`
	// Unit is the measurement unit (kg/g/mg for weight, cm/m/mm for length).
	Unit string `json:"unit"`
}

// Kg converts a weight measurement to kilograms.
// An unknown or empty unit contributes 0 instead of failing the request.
func (m Measurement) Kg() float64 {
	switch m.Unit {
	case "kg":
		return m.Value
	case "g":
		return m.Value / 1000
	case "mg":
		return m.Value / 1000000
	}
	return 0
}

// Cm converts a length measurement to centimeters.
// An unknown or empty unit contributes 0 instead of failing the request.
func (m Measurement) Cm() float64 {
	switch m.Unit {
	case "cm":
		return m.Value
	case "m":
		return m.Value * 100
	case "mm":
		return m.Value / 10
	}
	return 0
}
