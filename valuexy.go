package animated

// XY is a 2D value.
type XY struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// ValueXY pairs two independent Values. Every operation is applied to X and
// Y separately.
type ValueXY struct {
	children
	X, Y *Value
}

// NewValueXY creates a pair of values bound to this manager.
func (m *Manager) NewValueXY(xy XY) *ValueXY {
	return NewValueXYFrom(m.NewValue(xy.X), m.NewValue(xy.Y))
}

// NewValueXY creates a pair of values bound to the default manager.
func NewValueXY(xy XY) *ValueXY {
	return Default().NewValueXY(xy)
}

// NewValueXYFrom pairs existing values. Panics if either is nil.
func NewValueXYFrom(x, y *Value) *ValueXY {
	if x == nil || y == nil {
		panic("animated: ValueXY needs two non-nil values")
	}
	v := &ValueXY{X: x, Y: y}
	v.owner = v
	return v
}

// Kind reports KindValueXY.
func (v *ValueXY) Kind() NodeKind { return KindValueXY }

// Value returns the current pair as an XY.
func (v *ValueXY) Value() any { return v.XY() }

// AnimatedValue is the same as Value.
func (v *ValueXY) AnimatedValue() any { return v.XY() }

// XY returns the current values of X and Y.
func (v *ValueXY) XY() XY {
	return XY{X: v.X.Float(), Y: v.Y.Float()}
}

// SetValue sets both values, stopping their animations.
func (v *ValueXY) SetValue(xy XY) {
	v.X.SetValue(xy.X)
	v.Y.SetValue(xy.Y)
}

// SetOffset sets both offsets.
func (v *ValueXY) SetOffset(xy XY) {
	v.X.SetOffset(xy.X)
	v.Y.SetOffset(xy.Y)
}

// FlattenOffset merges both offsets into their models.
func (v *ValueXY) FlattenOffset() {
	v.X.FlattenOffset()
	v.Y.FlattenOffset()
}

// ExtractOffset moves both models into their offsets.
func (v *ValueXY) ExtractOffset() {
	v.X.ExtractOffset()
	v.Y.ExtractOffset()
}

// StopAnimations stops the animations on both values and calls cb, if
// non-nil, with the resulting pair.
func (v *ValueXY) StopAnimations(cb func(XY)) {
	v.X.StopAnimations(nil)
	v.Y.StopAnimations(nil)
	if cb != nil {
		cb(v.XY())
	}
}

// Layout returns the pair as "left" and "top" entries for a Style.
func (v *ValueXY) Layout() map[string]any {
	return map[string]any{"left": v.X, "top": v.Y}
}

// TranslateTransform returns the pair as translateX/translateY entries for
// a Transform.
func (v *ValueXY) TranslateTransform() []map[string]any {
	return []map[string]any{
		{"translateX": v.X},
		{"translateY": v.Y},
	}
}

func (v *ValueXY) attach() {
	v.X.AddChild(v)
	v.Y.AddChild(v)
}

func (v *ValueXY) detach() {
	v.X.RemoveChild(v)
	v.Y.RemoveChild(v)
}
