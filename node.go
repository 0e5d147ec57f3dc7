package animated

import "fmt"

// NodeKind identifies the concrete variant behind a Node.
type NodeKind uint8

const (
	KindValue NodeKind = iota
	KindValueXY
	KindInterpolation
	KindTransform
	KindStyle
	KindProps
)

var kindNames = [...]string{"value", "valueXY", "interpolation", "transform", "style", "props"}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", k)
}

// Node is a unit of the animation graph. The set of implementations is closed:
// *Value, *ValueXY, *Interpolation, *Transform, *Style and *Props.
//
// A node is attached (holding upstream resources such as a Manager
// registration or a subscription to its parent) exactly while it has at least
// one child. Adding the first child attaches it before the child is added;
// removing the last child detaches it after the child is removed.
type Node interface {
	Kind() NodeKind

	// Value returns the node's current value: a float64 for *Value and
	// numeric interpolations, XY for *ValueXY, a string for string
	// interpolations and maps or slices for the aggregates.
	Value() any

	// AnimatedValue is like Value but aggregates only report their
	// node-backed entries.
	AnimatedValue() any

	AddChild(child Node)
	RemoveChild(child Node)

	// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
	Children() []Node

	attach()
	detach()
}

// --- Child set ---

// children is the ordered child set embedded in every node that can have
// children. owner receives the attach/detach transitions.
type children struct {
	owner Node
	list  []Node
}

// AddChild appends child to the child set. The owner is attached first when
// this is its first child. Adding a child that is already present is a no-op.
// Panics if child is nil.
func (c *children) AddChild(child Node) {
	if child == nil {
		panic("animated: cannot add nil child")
	}
	if c.owner == nil {
		panic(fmt.Errorf("%w: AddChild on a node without an owner", ErrNotImplemented))
	}
	if c.indexOf(child) >= 0 {
		return
	}
	if len(c.list) == 0 {
		c.owner.attach()
	}
	c.list = append(c.list, child)
	if globalDebug {
		debugCheckChildCount(c.owner, len(c.list))
	}
}

// RemoveChild removes child from the child set and detaches the owner when it
// was the last one. Removing a child that is not present logs a warning and
// leaves the node untouched.
func (c *children) RemoveChild(child Node) {
	i := c.indexOf(child)
	if i < 0 {
		logger().Warn("animated: trying to remove a child that doesn't exist",
			"parent", kindOf(c.owner), "child", kindOf(child))
		return
	}
	copy(c.list[i:], c.list[i+1:])
	c.list[len(c.list)-1] = nil
	c.list = c.list[:len(c.list)-1]
	if len(c.list) == 0 && c.owner != nil {
		c.owner.detach()
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (c *children) Children() []Node {
	return c.list
}

// NumChildren returns the number of children.
func (c *children) NumChildren() int {
	return len(c.list)
}

func (c *children) attached() bool {
	return len(c.list) > 0
}

func (c *children) indexOf(child Node) int {
	for i, n := range c.list {
		if n == child {
			return i
		}
	}
	return -1
}

func kindOf(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Kind().String()
}

// --- Flush ---

// flush notifies every Props reachable from root through child links. Each
// Props is updated once even when reachable along several paths, in the order
// it is first found.
func flush(root Node) {
	var found []*Props
	var walk func(n Node)
	walk = func(n Node) {
		if n.Kind() == KindProps {
			p := n.(*Props)
			for _, q := range found {
				if q == p {
					return
				}
			}
			found = append(found, p)
			return
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(root)
	for _, p := range found {
		p.Update()
	}
}
