package server

import (
	"encoding/json"
	"net/http"

	"github.com/qdm12/guestbook/internal/models"
)

func (h *handlers) getEntries(w http.ResponseWriter, _ *http.Request) {
	state := h.view.Snapshot()
	if state.Entries == nil {
		state.Entries = []string{}
	}
	h.writeJSON(w, state.Entries)
}

func (h *handlers) getState(w http.ResponseWriter, _ *http.Request) {
	state := h.view.Snapshot()
	if state.Entries == nil {
		state.Entries = []string{}
	}
	h.writeJSON(w, models.JSONState{
		Entries:     state.Entries,
		AccentColor: state.AccentColor,
	})
}

func (h *handlers) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		h.logger.Error("encoding JSON: " + err.Error())
		httpError(w, http.StatusInternalServerError, "failed encoding JSON: "+err.Error())
	}
}
