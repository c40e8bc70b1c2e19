package hpg

// Logger receives optional debug traces, mirroring hpg.py's logger.debug
// calls around patch construction and level-skip decisions. Build2D and
// Build1D use noopLogger unless WithLogger is given.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
