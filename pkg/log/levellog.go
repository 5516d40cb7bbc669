package log

import "github.com/cyclopcam/logs"

// LevelLogger writes to the underlying log, but drops every message below MinLevel
type LevelLogger struct {
	logs.Log
	MinLevel Level
}

func NewLevelLogger(log logs.Log, minLevel Level) *LevelLogger {
	return &LevelLogger{
		Log:      log,
		MinLevel: minLevel,
	}
}

func (l *LevelLogger) Enabled(level Level) bool {
	return level >= l.MinLevel
}

func (l *LevelLogger) Debugf(format string, a ...interface{}) {
	if l.Enabled(LevelDebug) {
		l.Log.Debugf(format, a...)
	}
}

func (l *LevelLogger) Infof(format string, a ...interface{}) {
	if l.Enabled(LevelInfo) {
		l.Log.Infof(format, a...)
	}
}

func (l *LevelLogger) Warnf(format string, a ...interface{}) {
	if l.Enabled(LevelWarn) {
		l.Log.Warnf(format, a...)
	}
}

func (l *LevelLogger) Errorf(format string, a ...interface{}) {
	if l.Enabled(LevelError) {
		l.Log.Errorf(format, a...)
	}
}

// Critical messages are never dropped
func (l *LevelLogger) Criticalf(format string, a ...interface{}) {
	l.Log.Criticalf(format, a...)
}
