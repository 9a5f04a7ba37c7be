package calculation

// Logger receives the calculation layer's diagnostics: projection traces
// from the engine and comparison runner at debug level, and defaulted-rate
// fallbacks from the return estimator at warn level. The zero value of
// every component logs through NopLogger, so estimation warnings stay
// silent unless a caller wires in a real sink.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all calculation diagnostics.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}
