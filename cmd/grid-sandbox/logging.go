package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "grid-sandbox.log"
)

// setupLogging directs logrus to a file when debug is set and discards output otherwise
// The terminal is owned by the screen, so logs never go to stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		logrus.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		logrus.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return nil
	}
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	return f
}
