package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

type gormLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

// NewGormLogger routes gorm output into slog. Record-not-found is never
// reported as a failure; lookups use it as a normal miss.
func NewGormLogger(l *slog.Logger, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return &gormLogger{logger: l, level: level, slow: slowQueryThreshold}
}

func (g *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cp := *g
	cp.level = level
	return &cp
}

func (g *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	g.log(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (g *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	g.log(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (g *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	g.log(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (g *gormLogger) log(ctx context.Context, threshold logger.LogLevel, lvl slog.Level, msg string, args ...any) {
	if g.level < threshold {
		return
	}
	g.logger.LogAttrs(ctx, lvl, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (g *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level == logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && g.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.logger.LogAttrs(ctx, slog.LevelError, "gorm_query_failed",
			slog.Duration("elapsed", elapsed), slog.Int64("rows", rows), slog.String("sql", sql), slog.String("error", err.Error()))
	case g.slow > 0 && elapsed > g.slow && g.level >= logger.Warn:
		sql, rows := fc()
		g.logger.LogAttrs(ctx, slog.LevelWarn, "gorm_slow_query",
			slog.Duration("elapsed", elapsed), slog.Int64("rows", rows), slog.String("sql", sql))
	case g.level >= logger.Info:
		sql, rows := fc()
		g.logger.LogAttrs(ctx, slog.LevelDebug, "gorm_query",
			slog.Duration("elapsed", elapsed), slog.Int64("rows", rows), slog.String("sql", sql))
	}
}
