package log

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	LogV2 *AppLogger
)

// This init function is only for testing cases, where the entry point
// is not a main function. Unit tests would fail with a nil pointer
// dereference if we didn't init here.
func init() {
	initLogger()
}

type AppLogger struct {
	*logrus.Entry
}

func initLogger() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	env := os.Getenv("APP_ENV")
	if len(env) == 0 {
		env = "unknown"
	}

	LogV2 = &AppLogger{
		logger.WithField("app", "backend-"+strings.ReplaceAll(env, "_", "-")),
	}
}
