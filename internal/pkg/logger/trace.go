package logger

import (
	"CampaignLens/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// TraceIDKey 定义 Context 中的 Key
const TraceIDKey = "trace_id"

// WithTraceID 将 trace_id 写入 ctx
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithTrace 为后台任务生成 trace_id，例如 "job-<uuid>"、"kafka-<uuid>"
func WithTrace(ctx context.Context, source string) context.Context {
	return WithTraceID(ctx, source+"-"+uuid.NewString())
}

// ContextHandler 从 ctx 中提取 trace_id 与当前用户
type ContextHandler struct {
	next log.Handler
}

func NewContextHandler(next log.Handler) *ContextHandler {
	return &ContextHandler{next: next}
}

func (h *ContextHandler) Enabled(ctx context.Context, level log.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok && traceID != "" {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
		if uid, ok := ctx.Value(consts.ContextUserID).(uint64); ok {
			r.AddAttrs(log.Uint64(consts.ContextUserID, uid))
		}
	}
	return h.next.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) log.Handler {
	return &ContextHandler{next: h.next.WithGroup(name)}
}
