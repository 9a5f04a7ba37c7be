package logger

// Calc adapts the global zerolog logger to the calculation package's
// Logger interface, so estimator warning emission follows the configured
// global level instead of mutating any third-party logging state.
type Calc struct{}

func (Calc) Debugf(format string, args ...any) { L().Debug().Msgf(format, args...) }
func (Calc) Infof(format string, args ...any)  { L().Info().Msgf(format, args...) }
func (Calc) Warnf(format string, args ...any)  { L().Warn().Msgf(format, args...) }
func (Calc) Errorf(format string, args ...any) { L().Error().Msgf(format, args...) }
