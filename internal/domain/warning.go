package domain

import "fmt"

// Warning is a non-blocking degradation notice. Warnings accompany results
// that were produced with a fallback (default return rate, built-in option
// set); they are never errors and never halt a projection.
type Warning struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Source, w.Message)
}

// Warningf builds a warning with a formatted message.
func Warningf(source, format string, args ...any) Warning {
	return Warning{Source: source, Message: fmt.Sprintf(format, args...)}
}
