package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Spok95/supplyhub/internal/cart"
	"github.com/Spok95/supplyhub/internal/domain/orders"
)

const (
	sessionCookie = "supplyhub_session"
	sessionHeader = "X-Session-ID"
)

type cartView struct {
	SessionID string      `json:"sessionId"`
	Items     []cart.Item `json:"items"`
	Count     int         `json:"count"`
}

// sessionID: заголовок X-Session-ID (киоск без cookie) или cookie; если
// нет ни того ни другого — выдаём новую сессию.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(sessionHeader)); id != "" {
		return id
	}
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := cart.NewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(sessionHeader, id)
	return id
}

func (h *Handler) writeCart(w http.ResponseWriter, sid string) {
	items := h.carts.Items(sid)
	writeJSON(w, http.StatusOK, cartView{SessionID: sid, Items: items, Count: len(items)})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, sessionID(w, r))
}

type addToCartRequest struct {
	ItemID string `json:"itemId"`
}

// addToCart берёт имя товара и группы из каталога, клиенту их присылать не нужно.
func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.ItemID) == "" {
		writeError(w, http.StatusBadRequest, "Invalid cart data", "itemId is required")
		return
	}

	item, err := h.catalog.GetItem(r.Context(), req.ItemID)
	if err != nil {
		h.log.Error("cart: fetch item failed", "item_id", req.ItemID, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to add item", "")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "Item not found", "")
		return
	}
	group, err := h.catalog.GetGroup(r.Context(), item.GroupID)
	if err != nil {
		h.log.Error("cart: fetch group failed", "group_id", item.GroupID, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to add item", "")
		return
	}
	if group == nil {
		writeError(w, http.StatusNotFound, "Group not found", "")
		return
	}

	h.carts.Update(sid, func(c *cart.Cart) { c.Add(*item, *group) })
	h.writeCart(w, sid)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	itemID := chi.URLParam(r, "itemId")
	h.carts.Update(sid, func(c *cart.Cart) { c.Remove(itemID) })
	h.writeCart(w, sid)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	h.carts.Update(sid, func(c *cart.Cart) { c.Clear() })
	h.writeCart(w, sid)
}

// submitCart отправляет корзину сессии как заказ. После успеха из корзины
// убираются ровно отправленные позиции.
func (h *Handler) submitCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var (
		snapshot []cart.Item
		lines    []orders.Line
	)
	h.carts.Update(sid, func(c *cart.Cart) {
		snapshot = c.Items()
		lines = c.Lines()
	})

	h.submit(w, r, lines, func() {
		h.carts.Update(sid, func(c *cart.Cart) {
			for _, it := range snapshot {
				c.Remove(it.ItemID)
			}
		})
	})
}
