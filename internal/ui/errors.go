package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is the root of all configuration-time failures.
	ErrPrecondition = errors.New("ui: precondition violated")
	// ErrNoSuchElement indicates a selector or id resolved to nothing.
	ErrNoSuchElement = fmt.Errorf("%w: no such element", ErrPrecondition)
	// ErrUnknownOption indicates an option key that names no declared member.
	ErrUnknownOption = fmt.Errorf("%w: unknown option", ErrPrecondition)
	// ErrNilTarget indicates options were applied to a nil target.
	ErrNilTarget = fmt.Errorf("%w: nil target", ErrPrecondition)
	// ErrBadValue indicates a value of the wrong type for a control or slot.
	ErrBadValue = fmt.Errorf("%w: bad value", ErrPrecondition)
)
