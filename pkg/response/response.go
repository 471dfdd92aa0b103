package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_input"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("не удалось сериализовать тело ответа", slog.String("error", err.Error()))
		return
	}
	if _, err := w.Write(body); err != nil {
		log.Error("не удалось записать тело ответа", slog.String("error", err.Error()))
	}
}

func WriteJSONError(w http.ResponseWriter, log *slog.Logger, status int, errCode, message string) {
	writeJSON(w, log, status, ErrorResponse{Error: errCode, Message: message})
}

func WriteJSONSuccess(w http.ResponseWriter, log *slog.Logger, status int, data any) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, log, status, data)
}
