package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"kitawise-server/src/apperrors"
	"kitawise-server/src/logging"
)

// requests are small form submissions; anything bigger is hostile
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Errorf("Failed to encode response: %v", err)
	}
}

// writeError maps the error taxonomy onto status codes and a uniform
// {code, message} body.
func writeError(w http.ResponseWriter, entity string, err error) {
	var resp apperrors.ErrorResponse
	if !errors.As(err, &resp) {
		resp = apperrors.Store("There was a problem saving your %s", entity)
	}

	status := http.StatusInternalServerError
	switch resp.Code {
	case apperrors.CodeValidation:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, resp)
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.Validation("unable to read request body")
	}
	if len(body) == 0 {
		return nil, apperrors.Validation("request body is required")
	}
	return body, nil
}
