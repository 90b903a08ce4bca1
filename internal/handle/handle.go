package handle

import (
	"encoding/json"
	"net/http"

	"task-assist/internal/assist"
)

type Handle struct {
	eng assist.Engine
}

func New(eng assist.Engine) *Handle {
	return &Handle{
		eng: eng,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Error bodies carry a static message only; causes are logged server-side.
func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorBody{Error: msg})
}
