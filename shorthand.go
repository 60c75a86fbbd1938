package rectedit

import (
	"errors"
	"fmt"
)

// Shorthand is a four-sided box-model value (padding or border widths),
// expanded CSS-shorthand style from 0-4 scalar inputs. Immutable once
// constructed.
type Shorthand struct {
	Top, Right, Bottom, Left int
}

// ErrShorthandValues is returned by NewShorthand when more than four
// values are supplied.
var ErrShorthandValues = errors.New("rectedit: shorthand accepts at most four values")

// NewShorthand expands 0-4 values into a Shorthand:
//
//	()           -> (0, 0, 0, 0)
//	(v)          -> (v, v, v, v)
//	(a, b)       -> (a, b, a, b)
//	(a, b, c)    -> (a, b, c, b)
//	(t, r, b, l) -> verbatim
//
// More than four values is a caller error.
// https://developer.mozilla.org/en-US/docs/Web/CSS/Shorthand_properties
func NewShorthand(values ...int) (Shorthand, error) {
	switch len(values) {
	case 0:
		return Shorthand{}, nil
	case 1:
		return Uniform(values[0]), nil
	case 2:
		return Shorthand{values[0], values[1], values[0], values[1]}, nil
	case 3:
		return Shorthand{values[0], values[1], values[2], values[1]}, nil
	case 4:
		return Shorthand{values[0], values[1], values[2], values[3]}, nil
	default:
		return Shorthand{}, fmt.Errorf("%w: got %d", ErrShorthandValues, len(values))
	}
}

// Uniform returns a Shorthand with all four sides set to v.
func Uniform(v int) Shorthand {
	return Shorthand{v, v, v, v}
}
