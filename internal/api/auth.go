package api

import "net/http"

type pinRequest struct {
	PIN string `json:"pin"`
}

func (h *Handler) validatePIN(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid PIN payload", err.Error())
		return
	}
	ok := h.gate.Validate(req.PIN)
	h.metrics.PinCheck(ok)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"valid": false, "error": "Invalid PIN"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}
