package logger

import (
	"CampaignLens/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"time"
)

// LogWriter gin 访问日志的输出，连上 Logstash 后同时写本地与远程
var LogWriter io.Writer = os.Stdout

// InitLogger 默认输出到 stdout，配置了 Logstash 时同时上报带 trace_id 的日志
func InitLogger() {
	cfg := config.Cfg.Logstash
	opts := &log.HandlerOptions{Level: log.LevelInfo}

	var handler log.Handler = log.NewJSONHandler(os.Stdout, opts)

	if cfg.Address != "" {
		conn, err := net.DialTimeout("tcp", cfg.Address, 3*time.Second)
		if err != nil {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "addr", cfg.Address, "err", err)
		} else {
			remote := log.NewJSONHandler(conn, opts).WithAttrs([]log.Attr{
				log.String("target_index", cfg.Index),
				log.String("log_token", cfg.Token),
			})
			handler = NewTeeHandler(handler, NewRemoteFilterHandler(remote))
			LogWriter = io.MultiWriter(os.Stdout, conn)
		}
	}

	log.SetDefault(log.New(NewContextHandler(handler)))
}
