// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Field names shared by every component.
const (
	FieldComponent = "component"
	FieldEntity    = "entity"
	FieldID        = "id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldClientIP  = "client_ip"
)

// Configure applies level and format to the standard logger. An unknown
// level falls back to info.
func Configure(level, format string, out io.Writer) *logrus.Logger {
	logger := logrus.StandardLogger()
	if out != nil {
		logger.SetOutput(out)
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return logrus.WithField(FieldComponent, name)
}
