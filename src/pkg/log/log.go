package log

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Log struct singleton
type Log struct {
	AppName  string
	LogLevel int
	Logger   *logrus.Logger
}

var logger Log

var mapOfLogLevel = map[string]int{
	"DEBUG": 1,
	"INFO":  1,
	"ERROR": 2,
}

// InitLogger initialize logger from Viper
func InitLogger(v *viper.Viper) {
	logger = New(v.GetString("app.name"), v.GetString("log.level"), os.Stdout)
}

// GetLogger return singleton
func GetLogger() Log {
	return logger
}

// New builds a logger writing JSON lines to out.
func New(appName, level string, out io.Writer) Log {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(out)
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	logLevel, ok := mapOfLogLevel[strings.ToUpper(level)]
	if !ok {
		logLevel = 1
	}
	return Log{
		AppName:  appName,
		LogLevel: logLevel,
		Logger:   l,
	}
}

// Discard is used by tests that do not inspect log output.
func Discard() Log {
	return New("test", "ERROR", io.Discard)
}

func (l Log) Info(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 1 {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	l.Logger.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
		"file":    file,
		"line":    line,
	}).Info(message)
}

func (l Log) Error(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 2 {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	_, file2, line2, _ := runtime.Caller(2)
	l.Logger.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
		"file1":   file,
		"line1":   line,
		"file2":   file2,
		"line2":   line2,
	}).Error(message)
}

// Slow reports calls that exceeded their latency budget, e.g. the card authorizer.
func (l Log) Slow(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 1 {
		return
	}
	_, file, line, _ := runtime.Caller(2)
	l.Logger.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
		"file":    file,
		"line":    line,
	}).Warn("[SLOW] " + message)
}
