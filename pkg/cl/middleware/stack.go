package middleware

import (
	"net/http"
	"time"

	"github.com/aghadi/aghadi-api/pkg/cl/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// DefaultStack applies the default middleware stack to a router.
// No request timeout is applied; a request runs until its store call returns.
// A trailing slash is ignored when matching routes.
func DefaultStack(r chi.Router, log logger.Logger) {
	r.Use(chimw.StripSlashes)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(CORS)
}

// RequestLogger logs one line per request with status and duration.
// Server errors are logged at warn level.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			reqLog := log.With("request_id", chimw.GetReqID(r.Context()))
			elapsed := time.Since(start).Round(time.Millisecond)
			if status >= http.StatusInternalServerError {
				reqLog.Warnf("%s %s %d %s", r.Method, r.URL.Path, status, elapsed)
				return
			}
			reqLog.Infof("%s %s %d %s", r.Method, r.URL.Path, status, elapsed)
		})
	}
}

// CORS permits every origin. Preflights get back whatever request headers they ask for.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Add("Vary", "Access-Control-Request-Headers")
		allowHeaders := r.Header.Get("Access-Control-Request-Headers")
		if allowHeaders == "" {
			allowHeaders = "Content-Type"
		}
		w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
