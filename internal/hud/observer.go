package hud

import (
	"volumehud/internal/domain"
	"volumehud/internal/logger"
)

// Compile-time interface check.
var _ domain.Observer = (*LogObserver)(nil)

// LogObserver reports overlay transitions to the log. Useful for demos and
// for debugging hide-timer behavior in a host application.
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver creates an observer that logs at debug level.
func NewLogObserver(log *logger.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// WillShow logs the imminent presentation.
func (o *LogObserver) WillShow() {
	o.log.Debug("overlay will show")
}

// DidHide logs the completed dismissal.
func (o *LogObserver) DidHide() {
	o.log.Debug("overlay did hide")
}
