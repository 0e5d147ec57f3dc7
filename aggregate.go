package animated

import (
	"maps"
	"slices"
)

// Aggregates collect nodes and static values into the shapes a renderer
// consumes. Map entries that are Nodes are resolved on every read; any other
// entry is passed through unchanged.

// --- Transform ---

// Transform is an ordered list of transform components such as
// {"translateX": x} or {"rotate": "45deg"}.
type Transform struct {
	children
	transforms []map[string]any
}

// NewTransform creates a transform node. The maps are copied.
func NewTransform(transforms []map[string]any) *Transform {
	t := &Transform{transforms: make([]map[string]any, len(transforms))}
	for i, m := range transforms {
		t.transforms[i] = maps.Clone(m)
	}
	t.owner = t
	return t
}

// Kind reports KindTransform.
func (t *Transform) Kind() NodeKind { return KindTransform }

// Value resolves every component.
func (t *Transform) Value() any {
	return t.resolve(Node.Value)
}

// AnimatedValue resolves node components through AnimatedValue. Static
// components are kept, since the whole list is needed to compose the matrix.
func (t *Transform) AnimatedValue() any {
	return t.resolve(Node.AnimatedValue)
}

func (t *Transform) resolve(read func(Node) any) []map[string]any {
	out := make([]map[string]any, len(t.transforms))
	for i, m := range t.transforms {
		r := make(map[string]any, len(m))
		for k, v := range m {
			if n, ok := v.(Node); ok {
				r[k] = read(n)
			} else {
				r[k] = v
			}
		}
		out[i] = r
	}
	return out
}

func (t *Transform) attach() {
	for _, m := range t.transforms {
		for _, n := range nodesIn(m) {
			n.AddChild(t)
		}
	}
}

func (t *Transform) detach() {
	for _, m := range t.transforms {
		for _, n := range nodesIn(m) {
			n.RemoveChild(t)
		}
	}
}

// --- Style ---

// Style is a flat map of style properties. A "transform" entry given as a
// []map[string]any is wrapped in a Transform.
type Style struct {
	children
	style map[string]any
}

// NewStyle creates a style node. The map is copied.
func NewStyle(style map[string]any) *Style {
	s := &Style{style: maps.Clone(style)}
	if s.style == nil {
		s.style = map[string]any{}
	}
	if tr, ok := s.style["transform"].([]map[string]any); ok {
		s.style["transform"] = NewTransform(tr)
	}
	s.owner = s
	return s
}

// Kind reports KindStyle.
func (s *Style) Kind() NodeKind { return KindStyle }

// Value resolves every entry.
func (s *Style) Value() any {
	out := make(map[string]any, len(s.style))
	for k, v := range s.style {
		if n, ok := v.(Node); ok {
			out[k] = n.Value()
		} else {
			out[k] = v
		}
	}
	return out
}

// AnimatedValue returns only the node-backed entries.
func (s *Style) AnimatedValue() any {
	return animatedEntries(s.style)
}

func (s *Style) attach() {
	for _, n := range nodesIn(s.style) {
		n.AddChild(s)
	}
}

func (s *Style) detach() {
	for _, n := range nodesIn(s.style) {
		n.RemoveChild(s)
	}
}

// --- Props ---

// Props is the consumer end of the graph. It subscribes to its node entries
// as soon as it is created, and every flush that reaches it calls the update
// callback once. Props cannot have children; call Detach to unsubscribe.
type Props struct {
	props    map[string]any
	callback func()
}

// NewProps creates and attaches a props node. A "style" entry given as a
// map[string]any is wrapped in a Style. The map is copied.
func NewProps(props map[string]any, update func()) *Props {
	p := &Props{props: maps.Clone(props), callback: update}
	if p.props == nil {
		p.props = map[string]any{}
	}
	if st, ok := p.props["style"].(map[string]any); ok {
		p.props["style"] = NewStyle(st)
	}
	p.attach()
	return p
}

// Kind reports KindProps.
func (p *Props) Kind() NodeKind { return KindProps }

// Value resolves every entry.
func (p *Props) Value() any {
	out := make(map[string]any, len(p.props))
	for k, v := range p.props {
		if n, ok := v.(Node); ok {
			out[k] = n.Value()
		} else {
			out[k] = v
		}
	}
	return out
}

// AnimatedValue returns only the node-backed entries.
func (p *Props) AnimatedValue() any {
	return animatedEntries(p.props)
}

// AddChild panics: props are always leaves.
func (p *Props) AddChild(Node) {
	panic(ErrNotImplemented)
}

// RemoveChild panics: props are always leaves.
func (p *Props) RemoveChild(Node) {
	panic(ErrNotImplemented)
}

// Children returns nil.
func (p *Props) Children() []Node { return nil }

// Update calls the update callback.
func (p *Props) Update() {
	if p.callback != nil {
		p.callback()
	}
}

// Detach unsubscribes from every node entry. The props must not be used
// afterwards.
func (p *Props) Detach() {
	p.detach()
}

func (p *Props) attach() {
	for _, n := range nodesIn(p.props) {
		n.AddChild(p)
	}
}

func (p *Props) detach() {
	for _, n := range nodesIn(p.props) {
		n.RemoveChild(p)
	}
}

// --- Helpers ---

// nodesIn returns the Node entries of m in key order.
func nodesIn(m map[string]any) []Node {
	var nodes []Node
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if n, ok := m[k].(Node); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func animatedEntries(m map[string]any) map[string]any {
	out := make(map[string]any)
	for k, v := range m {
		if n, ok := v.(Node); ok {
			out[k] = n.AnimatedValue()
		}
	}
	return out
}
