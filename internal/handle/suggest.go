package handle

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"task-assist/internal/assist/types"
)

func (h *Handle) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	var req types.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.PartialTask) == "" {
		writeError(w, http.StatusBadRequest, "Missing partial_task")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), engineTimeout)
	defer cancel()

	out, err := h.eng.Suggest(ctx, req)
	if err != nil {
		log.Printf("suggest: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error during suggestion generation.")
		return
	}

	writeJSON(w, http.StatusOK, out)
}
