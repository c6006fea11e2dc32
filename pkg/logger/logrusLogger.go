package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusLogger — реализация Logger поверх logrus для бинаря панели.
type LogrusLogger struct {
	entry  *logrus.Entry
	prefix string
}

func NewLogrusLogger(base *logrus.Logger, component string) *LogrusLogger {
	return &LogrusLogger{
		entry:  base.WithField("component", component),
		prefix: component,
	}
}

func (l *LogrusLogger) Log(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *LogrusLogger) SetPrefix(prefix string) {
	l.prefix = strings.TrimSpace(prefix)
	l.entry = l.entry.Logger.WithField("component", l.prefix)
}
