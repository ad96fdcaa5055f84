package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"lavadero/internal/apierr"
	"lavadero/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeError maps service errors onto HTTP statuses for the admin UI.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCancelled):
		writeJSON(w, http.StatusConflict, map[string]any{"cancelled": true, "message": err.Error()})
		return
	case errors.Is(err, service.ErrFlowBusy):
		writeMessage(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, service.ErrPriceNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
		return
	}

	switch apierr.KindOf(err) {
	case apierr.KindValidation:
		writeMessage(w, http.StatusBadRequest, err.Error())
	case apierr.KindAuth:
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case apierr.KindNotFound:
		writeMessage(w, http.StatusNotFound, err.Error())
	case apierr.KindNetwork:
		writeMessage(w, http.StatusBadGateway, err.Error())
	case apierr.KindServer:
		writeMessage(w, http.StatusBadGateway, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, err.Error())
	}
}

// confirmerFor turns the UI's confirm flag into the service-layer Confirmer.
// The browser shows the actual dialog; the flag carries its outcome.
func confirmerFor(confirm bool) service.Confirmer {
	return service.ConfirmerFunc(func(string) bool { return confirm })
}
