// Package units converts document lengths (points, millimeters, percentages)
// to device pixels.
package units

import "errors"

// Unit names accepted in document lengths.
const (
	Points      = "pt"
	Millimeters = "mm"
	Pixels      = "px"
)

// DefaultDPI is the pixel-per-inch ratio used when a document declares none.
const DefaultDPI = 72.0

// ErrUnknownUnit is returned when a length carries an unrecognized unit.
var ErrUnknownUnit = errors.New("unknown length unit")

// ToPixels converts value expressed in unit to pixels at the given dpi.
// An empty unit means pixels. Unknown units return the raw value together
// with ErrUnknownUnit so callers can log it and continue.
func ToPixels(value float64, unit string, dpi float64) (float64, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	switch unit {
	case Points, "pointsUnit":
		return PointsToPixels(value, dpi), nil
	case Millimeters, "millimetersUnit":
		return MillimetersToPixels(value, dpi), nil
	case Pixels, "", "pixelsUnit":
		return value, nil
	default:
		return value, ErrUnknownUnit
	}
}

// PointsToPixels converts points (1/72 in) to pixels.
func PointsToPixels(pt, dpi float64) float64 {
	return pt * dpi / 72.0
}

// MillimetersToPixels converts millimeters to pixels.
func MillimetersToPixels(mm, dpi float64) float64 {
	return mm * dpi / 25.4
}

// PercentToPixels converts a percentage of total to pixels.
func PercentToPixels(pct, total float64) float64 {
	return pct * total / 100.0
}
