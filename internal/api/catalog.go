package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Spok95/supplyhub/internal/domain/catalog"
)

// listGroups — главный экран киоска, клиенты опрашивают его раз в 5 секунд.
func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.catalog.ListGroupsWithItems(r.Context())
	if err != nil {
		h.log.Error("fetch groups failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch groups", "")
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var in catalog.NewGroup
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid group data", err.Error())
		return
	}
	g, err := h.catalog.CreateGroup(r.Context(), in)
	if errors.Is(err, catalog.ErrInvalid) {
		writeError(w, http.StatusBadRequest, "Invalid group data", err.Error())
		return
	}
	if err != nil {
		h.log.Error("create group failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to create group", "")
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (h *Handler) listGroupItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItemsByGroup(r.Context(), chi.URLParam(r, "groupId"))
	if err != nil {
		h.log.Error("fetch group items failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch items", "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		h.log.Error("fetch items failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch items", "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var in catalog.NewItem
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item data", err.Error())
		return
	}
	it, err := h.catalog.CreateItem(r.Context(), in)
	if errors.Is(err, catalog.ErrInvalid) {
		writeError(w, http.StatusBadRequest, "Invalid item data", err.Error())
		return
	}
	if err != nil {
		h.log.Error("create item failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to create item", "")
		return
	}
	writeJSON(w, http.StatusCreated, it)
}
