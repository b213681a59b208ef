package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const maxAuditBody = 16384

// 登录返回体中的 token 与请求中的密码都不能落日志
var sensitiveFields = map[string]struct{}{
	"password": {},
	"token":    {},
	"secret":   {},
}

// bodyRecorder 只缓存前 maxAuditBody 字节，超出部分照常写给客户端
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	if room := maxAuditBody - r.body.Len(); room > 0 {
		r.body.Write(b[:min(room, len(b))])
	}
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware 记录每个请求的入参与返回，敏感字段脱敏
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxAuditBody+1))
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(reqBody), c.Request.Body))
		}

		query := c.Request.URL.RawQuery
		if decoded, err := url.QueryUnescape(query); err == nil {
			query = decoded
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", query),
			log.String("req_body", redactBody(reqBody)),
		)

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		start := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.Int("status", rec.Status()),
			log.Duration("latency", time.Since(start)),
			log.String("res_body", redactBody(rec.body.Bytes())),
		)
	}
}

// redactBody 屏蔽 JSON 中任意层级的敏感字段，非 JSON 或被截断的内容原样返回
func redactBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return string(body)
	}
	if !redact(doc) {
		return string(body)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return string(out)
}

func redact(v interface{}) bool {
	masked := false
	switch node := v.(type) {
	case map[string]interface{}:
		for key, child := range node {
			if _, ok := sensitiveFields[strings.ToLower(key)]; ok {
				node[key] = "***"
				masked = true
				continue
			}
			masked = redact(child) || masked
		}
	case []interface{}:
		for _, child := range node {
			masked = redact(child) || masked
		}
	}
	return masked
}
