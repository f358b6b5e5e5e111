package utils

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	loggers      = make(map[string]*log.Logger)
	loggersMutex sync.Mutex
	output       io.Writer = os.Stderr
)

// Logger returns a logger which prefixes the lines with the name. The
// loggers write to stderr so that they don't mix with the output of the
// commands.
func Logger(name string) *log.Logger {
	loggersMutex.Lock()
	defer loggersMutex.Unlock()
	if _, ok := loggers[name]; !ok {
		loggers[name] = log.New(output, name+": ", 0)
	}
	return loggers[name]
}

// SetLogOutput redirects all existing and future loggers.
func SetLogOutput(w io.Writer) {
	loggersMutex.Lock()
	defer loggersMutex.Unlock()
	output = w
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}
