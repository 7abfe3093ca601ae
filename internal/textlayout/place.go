package textlayout

import (
	"github.com/alnah/go-om2svg/geom"
	"github.com/alnah/go-om2svg/svgom"
)

// PlaceTransform returns the placement matrix of a text element, or nil when
// raw is absent or a no-op.
//
// The chain moves to the layer origin, pivots the raw matrix around the
// center of the layer box, then shifts by the offset between the layer box
// center and the text box center, lowered by half of maxFontPx so the first
// baseline lands inside the box. The order of the steps sets the pivot and
// must not change.
func PlaceTransform(raw *svgom.Matrix, shape, text geom.Rect, maxFontPx float64) *geom.Transform {
	if raw == nil {
		return nil
	}
	if raw.XX == 1 && raw.XY == 0 && raw.YX == 0 && raw.YY == 1 && raw.TX == 0 && raw.TY == 0 {
		return nil
	}

	obx := shape.Width() / 2
	oby := shape.Height() / 2
	tbx := text.Width() / 2
	tby := text.Height() / 2

	t := geom.Identity()
	t.Translate(shape.Left, shape.Top)
	t.Translate(obx, oby)
	t.Compose(raw.XX, raw.XY, raw.YX, raw.YY, raw.TX, raw.TY)
	t.Translate(-obx, -oby)
	t.Translate(obx-tbx, (oby-tby)+maxFontPx/2)
	return &t
}
