package arraygraph

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates window<1 or stride<1 was supplied, or the
// input matrix is non-rectangular.
var ErrInvalidArgument = errors.New("arraygraph: window and stride must be >= 1, and matrix rows must be equal length")

// arraygraphErrorf wraps ErrInvalidArgument with method/parameter context,
// mirroring builder.builderErrorf's "<method>: <message>" convention
// while keeping the sentinel reachable via errors.Is (the %w verb).
func arraygraphErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
