package hpg

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates Window/Levels/Stride were non-positive or
// the merging margins were out of range.
var ErrInvalidArgument = errors.New("hpg: invalid argument")

// hpgErrorf wraps ErrInvalidArgument with method/parameter context,
// mirroring builder.builderErrorf's "<method>: <message>" convention
// while keeping the sentinel reachable via errors.Is (the %w verb).
func hpgErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
