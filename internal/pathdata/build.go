package pathdata

import "github.com/alnah/go-om2svg/svgom"

// Mode selects how points are walked.
type Mode int

const (
	// Curve walks every point and emits cubic segments.
	Curve Mode = iota
	// Box reads the points as the four corners of a text frame and emits a
	// single straight baseline.
	Box
)

// OrientationHorizontal selects the horizontal baseline of a box frame.
const OrientationHorizontal = "horizontal"

// ModeFor returns the walk mode for a text shape.
func ModeFor(shape *svgom.TextShape) Mode {
	if shape != nil && shape.Kind == svgom.TextShapeBox {
		return Box
	}
	return Curve
}

// Build returns the path data for points. In Curve mode each segment uses
// the previous point's forward control (or its anchor) and the current
// point's backward control (or its anchor), so a missing control point gives
// a straight edge. closed adds the segment back to the first anchor and a
// close marker. Box mode ignores closed and
// draws the frame baseline with the default orientation; use BuildBox to pick
// one. Empty input yields "".
func Build(points []svgom.PathPoint, closed bool, mode Mode) string {
	if mode == Box {
		return BuildBox(points, "")
	}
	return Curves(points, closed).ToSVGPath()
}

// Curves returns the operations of a Curve mode walk.
func Curves(points []svgom.PathPoint, closed bool) Path {
	if len(points) == 0 {
		return nil
	}
	p := make(Path, 0, len(points)+2)
	p = append(p, MoveTo(points[0].Anchor))
	for i := 1; i < len(points); i++ {
		p = append(p, segment(points[i-1], points[i]))
	}
	if closed {
		if len(points) > 1 {
			p = append(p, segment(points[len(points)-1], points[0]))
		}
		p = append(p, Close{})
	}
	return p
}

func segment(prev, cur svgom.PathPoint) CubicTo {
	c1 := prev.Anchor
	if prev.Forward != nil {
		c1 = *prev.Forward
	}
	c2 := cur.Anchor
	if cur.Backward != nil {
		c2 = *cur.Backward
	}
	return CubicTo{c1, c2, cur.Anchor}
}

// BuildBox returns a straight path across a four-corner frame: corner 3 to
// corner 1 for a horizontal orientation, corner 2 to corner 0 otherwise.
// Frames with fewer than four corners yield "".
func BuildBox(points []svgom.PathPoint, orientation string) string {
	if len(points) < 4 {
		return ""
	}
	from, to := points[2].Anchor, points[0].Anchor
	if orientation == OrientationHorizontal {
		from, to = points[3].Anchor, points[1].Anchor
	}
	return Path{MoveTo(from), LineTo(to)}.ToSVGPath()
}

// FromShape builds the path of a text shape, choosing the mode from its
// kind. It yields "" when the shape carries no path.
func FromShape(shape *svgom.TextShape) string {
	if shape == nil || shape.Path == nil {
		return ""
	}
	if ModeFor(shape) == Box {
		return BuildBox(shape.Path.Points, shape.Orientation)
	}
	return Build(shape.Path.Points, shape.Path.Closed, Curve)
}

