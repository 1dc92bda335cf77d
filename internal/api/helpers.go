package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Kind        string `json:"kind,omitempty"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{Message: msgToSend}

	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "error", originErr.Error())
		resp.Description = originErr.Error()
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}
