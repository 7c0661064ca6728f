package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Spok95/supplyhub/internal/domain/orders"
	"github.com/Spok95/supplyhub/internal/ordering"
	"github.com/Spok95/supplyhub/internal/report"
)

type submitRequest struct {
	Items []orders.Line `json:"items"`
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order data", err.Error())
		return
	}
	h.submit(w, r, req.Items, nil)
}

// submit общий для /orders/submit и /cart/submit. onSuccess вызывается
// после записи заказа, до ответа.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, lines []orders.Line, onSuccess func()) {
	res, err := h.submitter.Submit(r.Context(), lines)
	if errors.Is(err, ordering.ErrValidation) {
		writeError(w, http.StatusBadRequest, "Invalid order data", err.Error())
		return
	}
	if err != nil {
		h.log.Error("submit order failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit order", "")
		return
	}
	if onSuccess != nil {
		onSuccess()
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.orders.List(r.Context())
	if err != nil {
		h.log.Error("fetch orders failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch orders", "")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) exportOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.orders.List(r.Context())
	if err != nil {
		h.log.Error("export: fetch orders failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to export orders", "")
		return
	}
	logs, err := h.usage.List(r.Context())
	if err != nil {
		h.log.Error("export: fetch usage failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to export orders", "")
		return
	}
	buf, err := report.OrdersWorkbook(list, logs, h.loc)
	if err != nil {
		h.log.Error("export: build workbook failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to export orders", "")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(h.now().In(h.loc))))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// resetOrders обнуляет журнал заказов, чтобы нумерация снова шла с 1.
func (h *Handler) resetOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Clear(r.Context()); err != nil {
		h.log.Error("reset orders failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to reset orders"})
		return
	}
	h.log.Warn("orders cleared by admin request")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Orders have been reset to 0. Next order will be #1.",
	})
}
