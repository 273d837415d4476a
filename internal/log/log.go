package logger

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const LogFileName = "repocloner.log"

var Log = logrus.New()

var logFilePath = LogFileName

func InitLogger(verbose bool, path string) {
	if path != "" {
		logFilePath = path
	}

	file, err := os.OpenFile(GetLogFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logrus.Fatalf("Failed to open log file: %v", err)
	}

	Log.SetOutput(file)

	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
		Log.Debugln("Verbose (debug) logging enabled")
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}

func GetLogFilePath() string {
	path, err := filepath.Abs(logFilePath)
	if err != nil {
		return logFilePath
	}
	return path
}
