package model

import (
	"fmt"
	"strings"
)

// Unit is the measurement unit a panel's raw dimensions are expressed in.
type Unit string

const (
	UnitMM   Unit = "mm"
	UnitInch Unit = "in"
	UnitFoot Unit = "ft"
)

// mmPerUnit is the single conversion table. Every conversion goes through
// millimetres so that A -> B -> A reproduces the input.
var mmPerUnit = map[Unit]float64{
	UnitMM:   1.0,
	UnitInch: 25.4,
	UnitFoot: 304.8,
}

// MMPerFoot is the number of millimetres in one foot.
const MMPerFoot = 304.8

// SqMMPerSqFt is the number of square millimetres in one square foot.
const SqMMPerSqFt = MMPerFoot * MMPerFoot // 92903.04

func (u Unit) String() string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitInch:
		return "inch"
	case UnitFoot:
		return "feet"
	default:
		return string(u)
	}
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	_, ok := mmPerUnit[u]
	return ok
}

// ParseUnit converts a user supplied unit tag to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return UnitMM, nil
	case "in", "inch", "inches", "\"":
		return UnitInch, nil
	case "ft", "feet", "foot", "'":
		return UnitFoot, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
}

// Units returns the supported units in display order.
func Units() []Unit {
	return []Unit{UnitMM, UnitInch, UnitFoot}
}

// Convert converts value from one unit to another.
func Convert(value float64, from, to Unit) (float64, error) {
	fromMM, ok := mmPerUnit[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, string(from))
	}
	toMM, ok := mmPerUnit[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, string(to))
	}
	if from == to {
		return value, nil
	}
	return value * fromMM / toMM, nil
}

// ToMM converts value in unit u to millimetres.
func ToMM(value float64, u Unit) (float64, error) {
	return Convert(value, u, UnitMM)
}
