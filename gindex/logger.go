package gindex

// Logger receives optional debug traces from InsertOrLookup, mirroring the
// logger.debug(...) calls graph_index.py makes on every comparison,
// merge, and strip-and-continue step. A GraphIndex built by New uses
// noopLogger unless WithLogger is given, so callers pay nothing unless
// they opt in.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
