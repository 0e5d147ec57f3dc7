package animated

import "errors"

var (
	// ErrConflictingSpringParams is returned when a SpringConfig sets fields
	// from more than one of the stiffness/damping/mass, tension/friction and
	// bounciness/speed groups.
	ErrConflictingSpringParams = errors.New("animated: define one of bounciness/speed, tension/friction, or stiffness/damping/mass, but not more than one")

	// ErrNonPositiveSpring is returned when a resolved spring constant is not
	// strictly positive.
	ErrNonPositiveSpring = errors.New("animated: spring stiffness, damping and mass must be greater than 0")

	// ErrNotNumeric is reported when an interpolation reads a parent whose
	// value is not a float64.
	ErrNotNumeric = errors.New("animated: interpolated value is not numeric")

	// ErrUninitialized is the panic value when an animation is read before it
	// has been started.
	ErrUninitialized = errors.New("animated: animation has not been started")

	// ErrNotImplemented is the panic value when a node is asked for a
	// capability it does not have.
	ErrNotImplemented = errors.New("animated: not implemented")
)
