package handle

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"explain-this/api/internal/simplify"
)

// maxBodyBytes bounds /analyze bodies; 5000 characters of UTF-8 fit well within it.
const maxBodyBytes = 1 << 20

type Handle struct {
	disp *simplify.Dispatcher
	log  *slog.Logger
}

func New(disp *simplify.Dispatcher, log *slog.Logger) *Handle {
	if log == nil {
		log = slog.Default()
	}
	return &Handle{
		disp: disp,
		log:  log,
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, errorResponse{Detail: detail})
}

// StatusFor maps a rejection kind to its HTTP status.
func StatusFor(k simplify.Kind) int {
	switch k {
	case simplify.EmptyInput, simplify.TextTooLong, simplify.InvalidComplexity:
		return http.StatusBadRequest
	case simplify.ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
