package utils

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	logOnce sync.Once
	logger  *logrus.Logger
)

// GetLogger returns the process-wide logger. Import runs log structured
// fields (batch id, entity, row counts), so JSON output is the default;
// set LOG_FORMAT=text for local reading. LOG_LEVEL follows logrus level
// names and falls back to info.
func GetLogger() *logrus.Logger {
	logOnce.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)

		level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)

		if os.Getenv("LOG_FORMAT") == "text" {
			logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		} else {
			logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
		}
	})
	return logger
}
