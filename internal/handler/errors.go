package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/MikhailRaia/bookmarks/internal/storage"
	"github.com/MikhailRaia/bookmarks/internal/validate"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	MsgNotFound = "Bookmark doesn't exist"
	MsgInternal = "internal server error"
)

// writeError is the single place where service errors become HTTP responses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *validate.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Warn().Str("field", vErr.Field).Msg(vErr.Message)
		writeJSON(w, http.StatusBadRequest, errorBody(vErr.Message))

	case errors.Is(err, storage.ErrNotFound):
		id := chi.URLParam(r, "id")
		log.Error().Str("id", id).Msgf("Bookmark with id %s not found.", id)
		writeJSON(w, http.StatusNotFound, errorBody(MsgNotFound))

	default:
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Msg("Request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody(MsgInternal))
	}
}

func errorBody(message string) model.ErrorBody {
	return model.ErrorBody{Error: model.ErrorMessage{Message: message}}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}
