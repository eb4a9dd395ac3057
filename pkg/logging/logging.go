// Package logging sets up the logrus logger the whole program uses.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logWhere decides where to send output. "" throws it away, "stdout"
// is standard output and anything else is a file, rotated when it
// gets big.
func logWhere(outinfo string) io.Writer {
	switch outinfo {
	case "":
		return io.Discard
	case "stdout":
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   outinfo,
		MaxSize:    64, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		LocalTime:  true,
	}
}

// Init points the standard logger at outinfo with the given level,
// like "debug" or "warn".
func Init(outinfo, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetOutput(logWhere(outinfo))
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	logrus.SetLevel(lvl)
	return nil
}

// Logger returns the logger set up by Init.
func Logger() *logrus.Logger { return logrus.StandardLogger() }
