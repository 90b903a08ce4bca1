package handle

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"task-assist/internal/assist/types"
)

const engineTimeout = 60 * time.Second

func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.TaskText) == "" {
		writeError(w, http.StatusBadRequest, "Missing task_text")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), engineTimeout)
	defer cancel()

	out, err := h.eng.Analyze(ctx, req)
	if err != nil {
		log.Printf("analyze: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error during AI analysis.")
		return
	}

	writeJSON(w, http.StatusOK, out)
}
