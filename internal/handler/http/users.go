package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/internal/store"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Err(err).Msg("list users")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// getUser answers unknown ids with 404 and an empty object, the way
// JSONPlaceholder does.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, struct{}{})
	case err != nil:
		logger.FromContext(r.Context()).Err(err).Int64("id", id).Msg("get user")
		writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, user)
	}
}

func (h *Handler) getServerVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.info.BuildVersion()))
}
