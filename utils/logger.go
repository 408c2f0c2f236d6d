package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger sudah bisa dipakai sebelum InitLoggerWithLevel dipanggil (mis. di test)
var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

// InitLoggerWithLevel mengatur output, format dan level kedua logger
func InitLoggerWithLevel(level string) {
	// Set output untuk InfoLogger ke stdout
	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Set output untuk ErrorLogger ke stderr
	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	InfoLogger.SetLevel(lvl)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}
