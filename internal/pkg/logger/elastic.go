package logger

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"time"
)

const esBodyLimit = 1000

// ESTransport 记录 ES 请求，请求体与响应体只在失败或慢请求时输出
type ESTransport struct {
	Transport     http.RoundTripper
	SlowThreshold time.Duration
}

func NewESTransport(next http.RoundTripper, slow time.Duration) *ESTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &ESTransport{Transport: next, SlowThreshold: slow}
}

func (t *ESTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	var reqBody []byte
	if req.Body != nil {
		reqBody, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(reqBody))
	}

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("path", req.URL.Path),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		fields = append(fields, log.String("req_body", truncateBody(reqBody)), log.Any("err", err))
		log.ErrorContext(req.Context(), "ES_QUERY_ERROR", fields...)
		return nil, err
	}

	fields = append(fields, log.Int("status", resp.StatusCode))
	slow := t.SlowThreshold > 0 && elapsed > t.SlowThreshold
	// 404 是索引/文档不存在的正常返回
	failed := resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound

	if !slow && !failed {
		log.DebugContext(req.Context(), "ES_QUERY", fields...)
		return resp, nil
	}

	var resBody []byte
	if resp.Body != nil {
		resBody, _ = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(resBody))
	}
	fields = append(fields,
		log.String("req_body", truncateBody(reqBody)),
		log.String("res_body", truncateBody(resBody)),
	)

	if failed {
		log.WarnContext(req.Context(), "ES_QUERY_FAILED", fields...)
	} else {
		log.WarnContext(req.Context(), "ES_QUERY_SLOW", fields...)
	}
	return resp, nil
}

func truncateBody(b []byte) string {
	if len(b) > esBodyLimit {
		return string(b[:esBodyLimit]) + "...[truncated]"
	}
	return string(b)
}
