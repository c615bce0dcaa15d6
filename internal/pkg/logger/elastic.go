package logger

import (
	log "log/slog"
	"net/http"
	"time"
)

// ESTransport 记录 Elasticsearch 请求耗时
type ESTransport struct {
	Transport http.RoundTripper
}

func (t *ESTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("url", req.URL.String()),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "ES_QUERY_ERROR", append(fields, log.Any("err", err))...)
		return nil, err
	}

	if elapsed > 500*time.Millisecond {
		log.WarnContext(req.Context(), "ES_QUERY_SLOW", append(fields, log.Int("status", resp.StatusCode))...)
	}

	return resp, nil
}
