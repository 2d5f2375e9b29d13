/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger is the leveled logger shared by the evaluation, lowering
// and command line layers. The expression core never logs.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level defines log levels
type Level int32

const (
	// DEBUG displays node renderings and compiled programs
	DEBUG Level = iota
	// INFO displays general information
	INFO
	// WARN displays recovered evaluation failures
	WARN
	// ERROR only displays errors
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name case-insensitively. The empty string
// parses as INFO.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	}
	return INFO, fmt.Errorf("logger: unknown level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Logger interface defines basic methods for logging
type Logger interface {
	// Debug records debug level logs
	Debug(format string, args ...interface{})
	// Info records info level logs
	Info(format string, args ...interface{})
	// Warn records warning level logs
	Warn(format string, args ...interface{})
	// Error records error level logs
	Error(format string, args ...interface{})
	// SetLevel sets the log level
	SetLevel(level Level)
	// With returns a logger sharing the output and level that tags every
	// line with component.
	With(component string) Logger
}

type defaultLogger struct {
	level     *atomic.Int32
	logger    *log.Logger
	component string
}

// NewLogger creates a new logger writing to output.
//
//	log := logger.NewLogger(logger.DEBUG, os.Stderr).With("lower")
//	log.Debug("compiled %s", src)
func NewLogger(level Level, output io.Writer) Logger {
	l := &defaultLogger{
		level:  new(atomic.Int32),
		logger: log.New(output, "", 0),
	}
	l.level.Store(int32(level))
	return l
}

func (l *defaultLogger) Debug(format string, args ...interface{}) { l.log(DEBUG, format, args...) }
func (l *defaultLogger) Info(format string, args ...interface{})  { l.log(INFO, format, args...) }
func (l *defaultLogger) Warn(format string, args ...interface{})  { l.log(WARN, format, args...) }
func (l *defaultLogger) Error(format string, args ...interface{}) { l.log(ERROR, format, args...) }

// SetLevel changes the level of l and of every logger derived with With.
func (l *defaultLogger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *defaultLogger) With(component string) Logger {
	c := component
	if l.component != "" {
		c = l.component + "." + component
	}
	return &defaultLogger{level: l.level, logger: l.logger, component: c}
}

func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	current := Level(l.level.Load())
	if current == OFF || level < current {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)
	if l.component != "" {
		l.logger.Printf("[%s] [%s] [%s] %s", timestamp, level, l.component, message)
		return
	}
	l.logger.Printf("[%s] [%s] %s", timestamp, level, message)
}

// discardLogger is a logger that discards all log output
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(format string, args ...interface{}) {}
func (discardLogger) Info(format string, args ...interface{})  {}
func (discardLogger) Warn(format string, args ...interface{})  {}
func (discardLogger) Error(format string, args ...interface{}) {}
func (discardLogger) SetLevel(level Level)                     {}
func (d discardLogger) With(string) Logger                     { return d }

var defaultInstance atomic.Value

func init() {
	defaultInstance.Store(holder{NewLogger(WARN, os.Stderr)})
}

// holder keeps the stored dynamic type constant for atomic.Value.
type holder struct{ Logger }

// SetDefault sets the global default logger
func SetDefault(logger Logger) {
	defaultInstance.Store(holder{logger})
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	return defaultInstance.Load().(holder).Logger
}

// Debug uses the default logger to record debug information
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info uses the default logger to record information
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn uses the default logger to record warnings
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error uses the default logger to record errors
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}
