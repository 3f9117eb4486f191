package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sentenceclash/internal/quiz"
	"sentenceclash/internal/service"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	http.Error(w, userMsg, status)
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithJSONError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}
	respondJSON(w, status, errorResponse{Error: userMsg})
}

// classifyError maps a quiz or service error to an HTTP status and user message
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, quiz.ErrEmptyData):
		return http.StatusServiceUnavailable, MsgLoadFailed
	case service.IsClientError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, quiz.ErrOutOfRange),
		errors.Is(err, quiz.ErrNotInProgress),
		errors.Is(err, quiz.ErrActionDisabled),
		errors.Is(err, quiz.ErrNotFinished):
		return http.StatusConflict, ErrActionNotAllowed
	default:
		return http.StatusInternalServerError, ErrInternalServerError
	}
}
