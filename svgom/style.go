package svgom

// Style is the visual style of a node. The printer hands it to the
// stylesheet, which turns it into CSS class rules and shared definitions.
type Style struct {
	Fill        string    `yaml:"fill" json:"fill"`
	Stroke      string    `yaml:"stroke" json:"stroke"`
	StrokeWidth float64   `yaml:"strokeWidth" json:"strokeWidth"`
	Opacity     *float64  `yaml:"opacity" json:"opacity"`
	Gradient    *Gradient `yaml:"gradient" json:"gradient"`
	Effect      *Effect   `yaml:"effect" json:"effect"`

	FontFamily     string  `yaml:"fontFamily" json:"fontFamily"`
	FontSize       float64 `yaml:"fontSize" json:"fontSize"` // px
	FontWeight     string  `yaml:"fontWeight" json:"fontWeight"`
	FontStyle      string  `yaml:"fontStyle" json:"fontStyle"`
	TextAnchor     string  `yaml:"textAnchor" json:"textAnchor"`
	BaselineScript string  `yaml:"baselineScript" json:"baselineScript"` // "super", "sub"
}

// Gradient is a fill gradient.
type Gradient struct {
	Type  string         `yaml:"type" json:"type"` // "linear" (default) or "radial"
	Angle float64        `yaml:"angle" json:"angle"`
	Stops []GradientStop `yaml:"stops" json:"stops"`
}

// GradientStop is one color stop, Offset in [0,1].
type GradientStop struct {
	Offset  float64  `yaml:"offset" json:"offset"`
	Color   string   `yaml:"color" json:"color"`
	Opacity *float64 `yaml:"opacity" json:"opacity"`
}

// Effect is a filter effect applied to a layer.
type Effect struct {
	Type    string  `yaml:"type" json:"type"` // "dropShadow" (default) or "blur"
	DX      float64 `yaml:"dx" json:"dx"`
	DY      float64 `yaml:"dy" json:"dy"`
	Blur    float64 `yaml:"blur" json:"blur"`
	Color   string  `yaml:"color" json:"color"`
	Opacity float64 `yaml:"opacity" json:"opacity"`
}

// HasStroke reports whether the style paints an edge stroke.
func (s *Style) HasStroke() bool {
	return s != nil && s.Stroke != "" && s.Stroke != "none"
}

// HasEffect reports whether the style carries a filter effect.
func (s *Style) HasEffect() bool {
	return s != nil && s.Effect != nil
}
