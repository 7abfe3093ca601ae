package geom

import "math"

// Point is a 2D coordinate in device pixels.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Rect is an axis-aligned box given by its edges in device pixels.
type Rect struct {
	Top    float64 `yaml:"top" json:"top"`
	Left   float64 `yaml:"left" json:"left"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// Width returns the signed horizontal span.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the signed vertical span.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Truncate drops the fractional part of each edge, the way layer bounds are
// read as integers before shapes are emitted.
func (r Rect) Truncate() Rect {
	return Rect{
		Top:    math.Trunc(r.Top),
		Left:   math.Trunc(r.Left),
		Right:  math.Trunc(r.Right),
		Bottom: math.Trunc(r.Bottom),
	}
}

// Round1k rounds to three decimal digits.
func Round1k(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Round rounds to the nearest integer, halves toward positive infinity.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}
