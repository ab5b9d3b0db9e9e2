package database

import (
	"context"
	"errors"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a GORM logger that writes through the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	timeProvider  coreport.TimeProvider
	logLevel      logger.LogLevel
	slowThreshold time.Duration
}

// NewDatabaseLogger creates a new database logger
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		timeProvider:  timeProvider,
		logLevel:      parseGormLevel(level),
		slowThreshold: 200 * time.Millisecond,
	}
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(_ context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, map[string]any{"source": "database"})
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(_ context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, map[string]any{"source": "database"})
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(_ context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, map[string]any{"source": "database"})
	}
}

// Trace logs SQL statements. Errors and slow statements are logged without
// bound values, regular statements only at debug.
func (l *DatabaseLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin).Std()
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	if !failed && !slow && l.logLevel < logger.Info {
		return
	}

	sql, rows := fc()
	fields := map[string]any{
		"source":     "database",
		"elapsed_ms": elapsed.Milliseconds(),
		"rows":       rows,
	}
	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if table := extractTableName(sql); table != "" {
		fields["table"] = table
	}

	switch {
	case failed && l.logLevel >= logger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL error", fields)
	case slow && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL query", fields)
	case l.logLevel >= logger.Info:
		fields["sql"] = sql
		l.coreLogger.Debug("SQL query", fields)
	}
}

// extractQueryType returns the leading SQL verb
func extractQueryType(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return ""
	}
	switch verb := strings.ToUpper(fields[0]); verb {
	case "SELECT", "INSERT", "UPDATE", "DELETE":
		return verb
	}
	return ""
}

// extractTableName returns the first table named after FROM, INTO or UPDATE
func extractTableName(sql string) string {
	fields := strings.Fields(sql)
	for i := 0; i < len(fields)-1; i++ {
		switch strings.ToUpper(fields[i]) {
		case "FROM", "INTO", "UPDATE":
			return strings.Trim(fields[i+1], "\"`")
		}
	}
	return ""
}
