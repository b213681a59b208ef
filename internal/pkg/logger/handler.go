package logger

import (
	"context"
	"errors"
	log "log/slog"
)

// TeeHandler 同一条记录分别交给本地与远程 Handler，一路失败不影响另一路
type TeeHandler struct {
	handlers []log.Handler
}

func NewTeeHandler(handlers ...log.Handler) *TeeHandler {
	return &TeeHandler{handlers: handlers}
}

func (s *TeeHandler) Enabled(ctx context.Context, level log.Level) bool {
	for _, h := range s.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (s *TeeHandler) Handle(ctx context.Context, r log.Record) error {
	var errs []error
	for _, h := range s.handlers {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (s *TeeHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return s.derive(func(h log.Handler) log.Handler { return h.WithAttrs(attrs) })
}

func (s *TeeHandler) WithGroup(name string) log.Handler {
	return s.derive(func(h log.Handler) log.Handler { return h.WithGroup(name) })
}

func (s *TeeHandler) derive(fn func(log.Handler) log.Handler) *TeeHandler {
	next := make([]log.Handler, 0, len(s.handlers))
	for _, h := range s.handlers {
		next = append(next, fn(h))
	}
	return &TeeHandler{handlers: next}
}

// RemoteFilterHandler 远程只上报带 trace_id 的链路日志，以及 Warn 及以上的日志
type RemoteFilterHandler struct {
	next log.Handler
}

func NewRemoteFilterHandler(next log.Handler) *RemoteFilterHandler {
	return &RemoteFilterHandler{next: next}
}

func (s *RemoteFilterHandler) Enabled(ctx context.Context, level log.Level) bool {
	return s.next.Enabled(ctx, level)
}

func (s *RemoteFilterHandler) Handle(ctx context.Context, r log.Record) error {
	if r.Level < log.LevelWarn && !hasTraceID(r) {
		return nil
	}
	return s.next.Handle(ctx, r)
}

func (s *RemoteFilterHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return NewRemoteFilterHandler(s.next.WithAttrs(attrs))
}

func (s *RemoteFilterHandler) WithGroup(name string) log.Handler {
	return NewRemoteFilterHandler(s.next.WithGroup(name))
}

func hasTraceID(r log.Record) bool {
	found := false
	r.Attrs(func(a log.Attr) bool {
		found = a.Key == TraceIDKey && a.Value.String() != ""
		return !found
	})
	return found
}
