package logger

import (
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/pkg/consts"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessLog struct {
	Time        string `json:"time"`
	Level       string `json:"level"`
	Msg         string `json:"msg"`
	TraceID     string `json:"trace_id,omitempty"`
	UserID      uint64 `json:"user_id,omitempty"`
	LogToken    string `json:"log_token,omitempty"`
	TargetIndex string `json:"target_index,omitempty"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Status      int    `json:"status"`
	Latency     string `json:"latency"`
	ClientIP    string `json:"client_ip"`
	Size        int    `json:"size"`
}

// SetupGin 访问日志直接写入 LogWriter，与 slog 输出同一格式
func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		SkipPaths: []string{"/api/ping"},
		Formatter: formatAccessLog,
	}))

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.ErrorContext(c.Request.Context(), "GIN_PANIC", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func formatAccessLog(p gin.LogFormatterParams) string {
	entry := accessLog{
		Time:     p.TimeStamp.Format(time.RFC3339),
		Level:    "INFO",
		Msg:      "GIN_ACCESS",
		Method:   p.Method,
		Path:     p.Path,
		Status:   p.StatusCode,
		Latency:  p.Latency.String(),
		ClientIP: p.ClientIP,
		Size:     p.BodySize,
	}
	if p.StatusCode >= http.StatusInternalServerError {
		entry.Level = "ERROR"
	}
	if config.Cfg != nil {
		entry.LogToken = config.Cfg.Logstash.Token
		entry.TargetIndex = config.Cfg.Logstash.Index
	}

	if id, ok := p.Keys[TraceIDKey].(string); ok {
		entry.TraceID = id
	} else if p.Request != nil {
		entry.TraceID, _ = p.Request.Context().Value(TraceIDKey).(string)
	}
	entry.UserID, _ = p.Keys[consts.ContextUserID].(uint64)

	b, err := json.Marshal(entry)
	if err != nil {
		return ""
	}
	return string(b) + "\n"
}
