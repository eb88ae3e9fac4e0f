package server

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed ui/index.html
var uiFS embed.FS

type handlers struct {
	// Objects
	view          View
	indexTemplate *template.Template
	logger        Logger
	// Settings
	rootURL       string
	refreshPeriod time.Duration
}

func newHandler(rootURL string, refreshPeriod time.Duration,
	view View, backendURL *url.URL, metricsHandler http.Handler,
	logger Logger) http.Handler {
	indexTemplate := template.Must(template.ParseFS(uiFS, "ui/index.html"))

	rootURL = strings.TrimSuffix(rootURL, "/")

	handlers := &handlers{
		view:          view,
		indexTemplate: indexTemplate,
		logger:        logger,
		rootURL:       rootURL,
		refreshPeriod: refreshPeriod,
	}

	router := chi.NewRouter()

	router.Use(middleware.Recoverer, logMiddleware(logger))

	router.Get(rootURL+"/", handlers.index)
	router.Post(rootURL+"/", handlers.submit)
	router.Get(rootURL+"/api/v1/entries", handlers.getEntries)
	router.Get(rootURL+"/api/v1/state", handlers.getState)

	if backendURL != nil {
		proxy := newBackendProxy(rootURL, backendURL, logger)
		for _, path := range []string{"/env", "/info", "/lrange/*", "/rpush/*"} {
			router.Get(rootURL+path, proxy.ServeHTTP)
		}
	}

	if metricsHandler != nil {
		router.Method(http.MethodGet, rootURL+"/metrics", metricsHandler)
	}

	return router
}
