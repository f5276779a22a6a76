package middlewares

import (
	"net"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID on the response.
const RequestIDHeader = "X-Request-ID"

// loggedHeaders are copied into the incoming request record when present.
var loggedHeaders = []string{"User-Agent", "Content-Type", "Accept", "Authorization"}

const authorizationLogPrefix = 20

// LoggingMiddleware returns a middleware that logs one "incoming request" record
// before the handler runs and one "outgoing response" record after it returns.
// If the handler panics, a "request failed" record is written instead and the
// panic is re-raised for the recovery layer.
func LoggingMiddleware(log *zap.SugaredLogger, instanceName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := &RequestContext{
				RequestID:  requestID(r),
				Method:     r.Method,
				URI:        r.RequestURI,
				RemoteHost: remoteHost(r.RemoteAddr),
				Start:      time.Now(),
			}

			r = r.WithContext(setRequestContext(r.Context(), rc))
			w.Header().Set(RequestIDHeader, rc.RequestID)

			log.Infow("incoming request", incomingFields(r, rc, instanceName)...)

			rw := newResponseWriter(w)

			defer func() {
				if rec := recover(); rec != nil {
					rc.Latency = time.Since(rc.Start)
					rc.Status = http.StatusInternalServerError
					log.Errorw("request failed",
						"instance", instanceName,
						"request_id", rc.RequestID,
						"method", rc.Method,
						"uri", rc.URI,
						"latency", rc.Latency,
						"error", rec,
					)
					panic(rec)
				}
			}()

			next.ServeHTTP(rw, r)

			rc.Latency = time.Since(rc.Start)
			rc.Status = rw.statusCode

			log.Infow("outgoing response",
				"instance", instanceName,
				"request_id", rc.RequestID,
				"method", rc.Method,
				"uri", rc.URI,
				"status", rc.Status,
				"latency", rc.Latency,
				"response_size", strconv.Itoa(rw.size)+"B",
			)
		})
	}
}

// requestID reuses a client-supplied ID or generates a new UUID.
func requestID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(RequestIDHeader)); id != "" {
		return id
	}
	return uuid.New().String()
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func incomingFields(r *http.Request, rc *RequestContext, instanceName string) []interface{} {
	fields := []interface{}{
		"instance", instanceName,
		"request_id", rc.RequestID,
		"method", rc.Method,
		"uri", rc.URI,
		"remote_host", rc.RemoteHost,
	}

	if q := formatQuery(r); q != "" {
		fields = append(fields, "query", q)
	}

	for _, name := range loggedHeaders {
		v := r.Header.Get(name)
		if v == "" {
			continue
		}
		if name == "Authorization" && len(v) > authorizationLogPrefix {
			v = v[:authorizationLogPrefix] + "..."
		}
		fields = append(fields, strings.ToLower(strings.ReplaceAll(name, "-", "_")), v)
	}

	return fields
}

// formatQuery renders query parameters as "k=v1,v2, k2=v" with sorted keys.
func formatQuery(r *http.Request) string {
	query := r.URL.Query()
	if len(query) == 0 {
		return ""
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strings.Join(query[k], ","))
	}
	return strings.Join(parts, ", ")
}
