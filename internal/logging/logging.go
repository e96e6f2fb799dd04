// internal/logging/logging.go
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger. Production logs are JSON,
// everything else uses the text formatter with full timestamps.
func Setup(environment, level string) {
	logrus.SetOutput(os.Stdout)

	if environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("Unknown log level, using info")
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
