package proximity

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates n<1 or D_win<1 was supplied to Build.
var ErrInvalidArgument = errors.New("proximity: n and D_win must be >= 1")

// proximityErrorf wraps ErrInvalidArgument with method/parameter context,
// mirroring builder.builderErrorf's "<method>: <message>" convention
// while keeping the sentinel reachable via errors.Is (the %w verb).
func proximityErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
