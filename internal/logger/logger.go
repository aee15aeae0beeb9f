package logger

import (
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus logging via a rotating file.
// LOG_LEVEL overrides the default "info" (anything logrus can parse).
func Setup() {
	rotator := &lumberjack.Logger{
		Filename:   "./logs/driver_hire.log",
		MaxSize:    10, // megabytes
		MaxBackups: 7,  // keep up to 7 old files
		MaxAge:     7,  // days
		Compress:   true,
	}

	logrus.SetOutput(rotator)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	level := logrus.InfoLevel
	if parsed, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level = parsed
	}
	logrus.SetLevel(level)
}
