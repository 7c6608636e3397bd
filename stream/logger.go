package stream

// Logger is the optional diagnostic sink a Stream reports block and
// back-pressure events to. It is satisfied structurally by
// *charmbracelet/log.Logger without this package importing it
// directly, keeping the streaming core free of a hard logging
// dependency while letting a caller wire in the ambient logger their
// process already uses.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Warnf(string, ...any)  {}
