package utils

import (
	"log"
	"os"
	"sync"
)

// The name of the environment variable which enables debug output when set to
// any non-empty value.
const DebugEnvVar = "FABRICDEBUG"

// Logger writes log messages prefixed with the name of a component.
type Logger interface {
	Printf(format string, v ...interface{})
	Print(v ...interface{})

	// Debugf logs only if debug output was enabled using the env variable.
	Debugf(format string, v ...interface{})
}

var loggersMutex sync.Mutex
var loggers = make(map[string]Logger)

// GetLogger returns a logger associated with the provided name, creating it
// first if needed. Calls using the same name return the same logger.
func GetLogger(name string) Logger {
	loggersMutex.Lock()
	defer loggersMutex.Unlock()
	l, ok := loggers[name]
	if !ok {
		l = &logger{
			Logger: log.New(os.Stdout, name+": ", 0),
			debug:  os.Getenv(DebugEnvVar) != "",
		}
		loggers[name] = l
	}
	return l
}

type logger struct {
	*log.Logger
	debug bool
}

func (l *logger) Debugf(format string, v ...interface{}) {
	if l.debug {
		l.Printf(format, v...)
	}
}
