package server

import (
	"net/http"
	"net/http/httputil"
	"net/url"
)

// newBackendProxy returns a handler forwarding requests to the
// backend, with the root URL prefix removed from their path.
func newBackendProxy(rootURL string, backendURL *url.URL,
	logger Logger) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(backendURL)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("proxying " + r.URL.Path + " to backend: " + err.Error())
		httpError(w, http.StatusBadGateway, "backend is unreachable")
	}
	return http.StripPrefix(rootURL, proxy)
}
