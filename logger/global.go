package logger

import "sync/atomic"

//nolint:gochecknoglobals // process-wide logger used by packages that are not handed one
var global atomic.Value // stores holder

// SetGlobal replaces the global logger. It is called once the configuration is loaded;
// until then the global logger is a pretty info-level logger.
func SetGlobal(l Logger) {
	global.Store(holder{l})
}

// Global returns the current global logger.
func Global() Logger {
	if h, ok := global.Load().(holder); ok {
		return h.Logger
	}

	l, err := New(Config{Level: levelInfo, Encoding: EncodingPretty})
	if err != nil {
		panic("[logger]: failed to initialize default logger: " + err.Error())
	}
	global.CompareAndSwap(nil, holder{l})

	return global.Load().(holder).Logger //nolint:errcheck // holder is the only stored type
}

// Named adds a sub-scope to the global logger's name.
func Named(name string) Logger {
	return Global().Named(name)
}

// Sync flushes any buffered log entries from the global logger.
func Sync() error {
	return Global().Sync()
}

// holder keeps atomic.Value's concrete type stable across different Logger implementations.
type holder struct {
	Logger
}
