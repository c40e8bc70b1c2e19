package collector

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by AppropriatenessOf/Add style entry
// points when given empty input (spec.md §7: "The Collector raises
// InvalidArgument on empty input"), or by New/NewHPGCollector on a bad
// configuration.
var ErrInvalidArgument = errors.New("collector: invalid argument")

// collectorErrorf wraps ErrInvalidArgument with method/parameter context,
// mirroring builder.builderErrorf's "<method>: <message>" convention
// while keeping the sentinel reachable via errors.Is (the %w verb).
func collectorErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
