package logger_test

import (
	"bytes"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchback-web/switchback/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func TestSwitchbackLoggerLevels(t *testing.T) {
	tcs := []struct {
		name     string
		level    logger.LogLevel
		log      func(logger.Logger)
		expected string
	}{
		{"Debug-At-Debug", logger.LogLevelDebug, func(l logger.Logger) { l.Debug("dbg", nil) }, "dbg"},
		{"Debug-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Debug("dbg", nil) }, ""},
		{"Info-At-Info", logger.LogLevelInfo, func(l logger.Logger) { l.Info("inf", nil) }, "inf"},
		{"Warn-At-Error", logger.LogLevelError, func(l logger.Logger) { l.Warn("wrn", nil) }, ""},
		{"Error-At-Error", logger.LogLevelError, func(l logger.Logger) { l.Error("err", nil) }, "err"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(
				logger.WithLogger(log.New(b, "", 0)),
				logger.WithLevel(tc.level),
			)

			// Act
			tc.log(l)

			// Assert
			if tc.expected == "" {
				require.Zero(t, b.Len())
				return
			}

			match := msgRegexp.FindStringSubmatch(b.String())
			require.Len(t, match, 2)
			require.Equal(t, tc.expected, match[1])
		})
	}
}

func TestSwitchbackLoggerLogLevel(t *testing.T) {
	// Arrange + Act
	l := logger.New(logger.WithLevel(logger.LogLevelWarn))

	// Assert
	require.Equal(t, logger.LogLevelWarn, l.LogLevel())
}

func TestNewLogLevel(t *testing.T) {
	tcs := []struct {
		val      string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"whatever", logger.LogLevelUnk},
	}

	for _, tc := range tcs {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}
}
