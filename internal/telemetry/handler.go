// Package telemetry adapts vecraster's slog-based logging onto zerolog and
// exposes Prometheus metrics for Rasterize calls.
package telemetry

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// zerologHandler forwards slog records to a zerolog.Logger. Adapted from
// h3-spatial-cache's internal/logger/slog_zerolog_handler.go, dropping its
// context-scoped logger lookup since vecraster has no per-request context
// to carry one in.
type zerologHandler struct {
	zl    *zerolog.Logger
	attrs []slog.Attr
}

// NewSlogHandler builds a slog.Handler that writes through zl, so callers
// can bridge vecraster.SetLogger onto an existing zerolog.Logger:
//
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	vecraster.SetLogger(slog.New(telemetry.NewSlogHandler(&zl)))
func NewSlogHandler(zl *zerolog.Logger) slog.Handler {
	return &zerologHandler{zl: zl}
}

func (h *zerologHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *zerologHandler) Handle(_ context.Context, r slog.Record) error {
	var ev *zerolog.Event
	switch {
	case r.Level <= slog.LevelDebug:
		ev = h.zl.Debug()
	case r.Level == slog.LevelWarn:
		ev = h.zl.Warn()
	case r.Level >= slog.LevelError:
		ev = h.zl.Error()
	default:
		ev = h.zl.Info()
	}
	for _, a := range h.attrs {
		ev = addAttr(ev, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		ev = addAttr(ev, a)
		return true
	})
	ev.Msg(r.Message)
	return nil
}

func (h *zerologHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = append(append([]slog.Attr{}, cp.attrs...), attrs...)
	return &cp
}

func (h *zerologHandler) WithGroup(string) slog.Handler { return h }

func addAttr(ev *zerolog.Event, a slog.Attr) *zerolog.Event {
	a.Value = a.Value.Resolve()
	switch a.Value.Kind() {
	case slog.KindString:
		return ev.Str(a.Key, a.Value.String())
	case slog.KindInt64:
		return ev.Int64(a.Key, a.Value.Int64())
	case slog.KindFloat64:
		return ev.Float64(a.Key, a.Value.Float64())
	case slog.KindBool:
		return ev.Bool(a.Key, a.Value.Bool())
	default:
		return ev.Interface(a.Key, a.Value.Any())
	}
}
