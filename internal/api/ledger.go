package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRequested(w http.ResponseWriter, r *http.Request) {
	items, err := h.ledger.ListRequested(r.Context())
	if err != nil {
		h.log.Error("fetch requested items failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch requested items", "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) requestRestock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.ledger.RequestRestock(r.Context(), id)
	if err != nil {
		h.log.Error("request restock failed", "item_id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to request restock", "")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "Item not found", "")
		return
	}
	h.metrics.LedgerOp("request")
	h.log.Info("restock requested", "item_id", item.ID, "item", item.Name)
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) clearRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.ledger.ClearRequest(r.Context(), id)
	if err != nil {
		h.log.Error("clear request failed", "item_id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to clear request", "")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "Item not found", "")
		return
	}
	h.metrics.LedgerOp("clear")
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.ledger.ClearAll(r.Context())
	if err != nil {
		h.log.Error("clear all requests failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to clear all requests", "")
		return
	}
	h.metrics.LedgerOp("clear_all")
	h.log.Info("all restock requests cleared", "cleared", n)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "cleared": n})
}
