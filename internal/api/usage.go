package api

import (
	"errors"
	"net/http"

	"github.com/Spok95/supplyhub/internal/domain/usage"
)

func (h *Handler) recordUsage(w http.ResponseWriter, r *http.Request) {
	var in usage.NewLog
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid usage data", err.Error())
		return
	}
	l, err := h.usage.Record(r.Context(), in)
	if errors.Is(err, usage.ErrInvalid) {
		writeError(w, http.StatusBadRequest, "Invalid usage data", err.Error())
		return
	}
	if err != nil {
		h.log.Error("record usage failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to record usage", "")
		return
	}
	h.metrics.UsageRecorded()
	writeJSON(w, http.StatusCreated, l)
}

func (h *Handler) listUsage(w http.ResponseWriter, r *http.Request) {
	logs, err := h.usage.List(r.Context())
	if err != nil {
		h.log.Error("fetch usage failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch usage", "")
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
