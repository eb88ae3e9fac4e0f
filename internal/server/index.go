package server

import (
	"html/template"
	"net/http"

	"github.com/qdm12/guestbook/internal/constants"
	"github.com/qdm12/guestbook/internal/models"
)

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

// renderPage renders the guestbook page for the client of r. The draft
// and host address belong to that client and are not shared with others.
func (h *handlers) renderPage(w http.ResponseWriter, r *http.Request, draft string) {
	// Prevent caching to ensure entries are always fresh
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")

	state := h.view.Snapshot()

	htmlData := models.HTMLData{
		Title:       constants.Title,
		Entries:     state.Entries,
		Waiting:     constants.WaitingText,
		Draft:       draft,
		AccentStyle: template.CSS("--dynamic-color: " + string(state.AccentColor)), //nolint:gosec
		HostAddress: requestAddress(r),
		Links: []models.HTMLLink{
			{Href: h.rootURL + constants.EnvPath, Text: constants.EnvPath},
			{Href: h.rootURL + constants.InfoPath, Text: constants.InfoPath},
		},
		SubmitPath:    h.rootURL + "/",
		EntriesPath:   h.rootURL + "/api/v1/entries",
		RefreshMillis: h.refreshPeriod.Milliseconds(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.indexTemplate.ExecuteTemplate(w, "index.html", htmlData)
	if err != nil {
		h.logger.Error("generating webpage: " + err.Error())
		httpError(w, http.StatusInternalServerError, "failed generating webpage: "+err.Error())
	}
}

// requestAddress returns the absolute address of the page requested,
// as seen by the browser.
func requestAddress(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwardedProto := r.Header.Get("X-Forwarded-Proto"); forwardedProto != "" {
		scheme = forwardedProto
	}

	host := r.Host
	if forwardedHost := r.Header.Get("X-Forwarded-Host"); forwardedHost != "" {
		host = forwardedHost
	}

	return scheme + "://" + host + r.URL.RequestURI()
}
