//go:build !notrace

package tagsoup

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"runtime"
	"time"
)

type traceLoggerKey struct{}
type spanIDKey struct{}

var TracingEnabled = true

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

type Span interface {
	End()
}

type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
}

type span struct {
	info *SpanInfo
	tlog *slog.Logger
}

func (s *span) End() {
	s.tlog.Debug("END",
		slog.String("span_id", s.info.ID),
		slog.String("span_name", s.info.Name),
		slog.Duration("duration", time.Since(s.info.Start)),
	)
}

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

// WithSpan opens a span nested under the span already in ctx, if any.
func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	info := &SpanInfo{
		ID:    generateSpanID(),
		Name:  name,
		Start: time.Now(),
	}
	if parent, ok := ctx.Value(spanIDKey{}).(*SpanInfo); ok {
		info.ParentID = parent.ID
	}
	return context.WithValue(ctx, spanIDKey{}, info), info
}

func StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, info := WithSpan(ctx, name)
	tlog := getTraceLogFromContext(ctx)
	tlog.Debug("START",
		slog.String("span_id", info.ID),
		slog.String("span_name", info.Name),
	)
	return ctx, &span{info: info, tlog: tlog}
}

func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	tlog := getTraceLogFromContext(ctx)
	tlog.LogAttrs(ctx, slog.LevelDebug, msg, withSpanAttrs(ctx, attrs)...)
}

func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	tlog := getTraceLogFromContext(ctx)
	attrs = append(attrs, slog.String("error", err.Error()))
	tlog.LogAttrs(ctx, slog.LevelError, msg, withSpanAttrs(ctx, attrs)...)
}

func withSpanAttrs(ctx context.Context, attrs []slog.Attr) []slog.Attr {
	if info, ok := ctx.Value(spanIDKey{}).(*SpanInfo); ok {
		attrs = append(attrs, slog.String("span_id", info.ID))
	}
	return attrs
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		// Retrieve the function name of the caller for tracing
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			fn := runtime.FuncForPC(pc)
			if fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}
		return tlog
	}
	return nullLogger
}

// generateSpanID returns 8 random bytes, hex encoded
func generateSpanID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
