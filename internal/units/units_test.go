package units

import (
	"errors"
	"math"
	"testing"
)

func TestToPixels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   float64
		unit    string
		dpi     float64
		want    float64
		wantErr error
	}{
		{name: "points at 72dpi", value: 12, unit: Points, dpi: 72, want: 12},
		{name: "points at 144dpi", value: 12, unit: Points, dpi: 144, want: 24},
		{name: "legacy points name", value: 36, unit: "pointsUnit", dpi: 72, want: 36},
		{name: "millimeters", value: 25.4, unit: Millimeters, dpi: 72, want: 72},
		{name: "pixels", value: 7, unit: Pixels, dpi: 300, want: 7},
		{name: "empty unit is pixels", value: 7, dpi: 300, want: 7},
		{name: "zero dpi falls back", value: 10, unit: Points, dpi: 0, want: 10},
		{name: "unknown unit", value: 3, unit: "furlong", dpi: 72, want: 3, wantErr: ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToPixels(tt.value, tt.unit, tt.dpi)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ToPixels() error = %v, want %v", err, tt.wantErr)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ToPixels() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercentToPixels(t *testing.T) {
	t.Parallel()

	if got := PercentToPixels(25, 200); got != 50 {
		t.Errorf("PercentToPixels(25, 200) = %v, want 50", got)
	}
}
