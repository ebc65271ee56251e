// Package force defines the propagation methods and sentinel errors for
// redistributing a scalar force field across a cell toward its nucleus.
package force

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/nucleusforce/grid"
)

// ErrUnknownMethod is returned when a Method name cannot be parsed or dispatched.
var ErrUnknownMethod = errors.New("force: unknown propagation method")

// Method selects a propagation algorithm.
type Method int

const (
	// MethodMinDistance drains every pixel into its nearest-distance neighbors,
	// farthest pixels first.
	MethodMinDistance Method = iota
	// MethodLayer erodes the cell layer by layer, spreading each peeled
	// pixel's force over its remaining 3×3 neighborhood.
	MethodLayer
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodMinDistance:
		return "mindist"
	case MethodLayer:
		return "layer"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "mindist" / "min-distance" and "layer" (any case) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mindist", "min-distance", "min_distance":
		return MethodMinDistance, nil
	case "layer":
		return MethodLayer, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Propagate runs method over cell, nucleus and seed. See MinDistance and Layer.
func Propagate(method Method, cell, nucleus *grid.Labels, seed *grid.Forces) (*grid.Forces, error) {
	switch method {
	case MethodMinDistance:
		return MinDistance(cell, nucleus, seed)
	case MethodLayer:
		return Layer(cell, nucleus, seed)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
}
