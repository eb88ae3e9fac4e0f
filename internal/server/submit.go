package server

import (
	"net/http"
)

func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		httpError(w, http.StatusBadRequest, "parsing form: "+err.Error())
		return
	}

	draft := r.PostFormValue("entry")

	err = h.view.HandleSubmit(r.Context(), draft)
	if err != nil {
		// already logged by the view, the page is rendered again
		// for this client only with its draft kept in the input.
		h.renderPage(w, r, draft)
		return
	}

	http.Redirect(w, r, h.rootURL+"/", http.StatusSeeOther)
}
