package logger

import (
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	// Structured JSON on stdout plays nicely with systemd/docker log collection.
	logger.Out = os.Stdout
	logger.Formatter = &log.JSONFormatter{}

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// GetLogger returns an entry annotated with the calling function and location.
func GetLogger() *log.Entry {
	pc, file, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return logger.WithFields(log.Fields{
		"function": fn.Name(),
		"file":     file,
		"line":     line,
	})
}
