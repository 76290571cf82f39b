package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeError is the single translation point from domain errors to HTTP
// statuses. Client messages stay generic; detail belongs in logs.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		writeMessage(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	switch {
	case errors.Is(err, model.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, "email already in use")
	case errors.Is(err, model.ErrDuplicateExternalID):
		writeMessage(w, http.StatusBadRequest, "identity already linked to another account")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, "invalid credentials")
	case errors.Is(err, model.ErrInvalidAssertion):
		writeMessage(w, http.StatusUnauthorized, "invalid identity token")
	case errors.Is(err, model.ErrTokenMissing),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenInvalid):
		writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
	case errors.Is(err, model.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	default:
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
