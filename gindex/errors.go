package gindex

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates ThetaLo/ThetaHi were out of range or
// inverted.
var ErrInvalidArgument = errors.New("gindex: invalid argument")

// gindexErrorf wraps ErrInvalidArgument with method/parameter context,
// mirroring builder.builderErrorf's "<method>: <message>" convention
// while keeping the sentinel reachable via errors.Is (the %w verb).
func gindexErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
