package animated

import (
	"fmt"

	"github.com/phanxgames/animated/interpolation"
)

// Interpolation is a read-only node deriving its value from a parent through
// an interpolation function. It subscribes to the parent while it has
// children of its own.
type Interpolation struct {
	children
	parent Node
	fn     interpolation.Func
}

// Interpolate returns a node mapping parent's numeric value through cfg.
// Panics if parent is nil.
func Interpolate(parent Node, cfg interpolation.Config) (*Interpolation, error) {
	if parent == nil {
		panic("animated: cannot interpolate a nil node")
	}
	fn, err := interpolation.New(cfg)
	if err != nil {
		return nil, err
	}
	n := &Interpolation{parent: parent, fn: fn}
	n.owner = n
	return n, nil
}

// Interpolate chains a further mapping on top of this one.
func (n *Interpolation) Interpolate(cfg interpolation.Config) (*Interpolation, error) {
	return Interpolate(n, cfg)
}

// Kind reports KindInterpolation.
func (n *Interpolation) Kind() NodeKind { return KindInterpolation }

// Parent returns the node being interpolated.
func (n *Interpolation) Parent() Node { return n.parent }

// Eval maps the parent's current value. It fails with ErrNotNumeric when the
// parent's value is not a float64.
func (n *Interpolation) Eval() (any, error) {
	pv := n.parent.Value()
	f, ok := pv.(float64)
	if !ok {
		return nil, fmt.Errorf("%w: %s node has value of type %T", ErrNotNumeric, n.parent.Kind(), pv)
	}
	return n.fn(f), nil
}

// Value is Eval without the error. Panics with ErrNotNumeric when the parent
// is not numeric.
func (n *Interpolation) Value() any {
	v, err := n.Eval()
	if err != nil {
		panic(err)
	}
	return v
}

// AnimatedValue is the same as Value.
func (n *Interpolation) AnimatedValue() any { return n.Value() }

func (n *Interpolation) attach() {
	n.parent.AddChild(n)
}

func (n *Interpolation) detach() {
	n.parent.RemoveChild(n)
}
