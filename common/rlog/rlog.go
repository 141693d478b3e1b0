package rlog

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetOutput changes the destination of the logs
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel parses the level name and applies it
func SetLevel(level string) error {
	if len(level) == 0 {
		return nil
	}
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.WithStack(err)
	}
	logger.SetLevel(lv)
	return nil
}

// SetJSONFormat switches the formatter to json lines
func SetJSONFormat(use bool) {
	if use {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// WithFields returns an entry that carries the fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Debugf(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

func Infof(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

func Warnf(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}
