package kit

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const RequestIDHeader = "X-Request-Id"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// WriteError renders {"error": kind, "message": msg}. The request id, when
// present, travels in a response header so the body keeps its two fields.
func WriteError(w http.ResponseWriter, r *http.Request, status int, kind, msg string) {
	if reqID := chimw.GetReqID(r.Context()); reqID != "" {
		w.Header().Set(RequestIDHeader, reqID)
	}
	WriteJSON(w, status, ErrorResponse{
		Error:   kind,
		Message: msg,
	})
}
