package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

func logMiddleware(logger Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(wrapped, r)
			logger.Debug(r.Method + " " + r.URL.RequestURI() + " " +
				strconv.Itoa(wrapped.Status()) + " " +
				strconv.Itoa(wrapped.BytesWritten()) + "B " +
				time.Since(start).Round(time.Microsecond).String())
		})
	}
}
