package handler

import (
	"net/http"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/wantlist"
)

// WantListHandler serves the persisted want-list and its expansion.
type WantListHandler struct {
	service wantlist.Service
}

func NewWantListHandler(service wantlist.Service) *WantListHandler {
	return &WantListHandler{service: service}
}

// AddWantListRequest adds or updates an entry. Item accepts a canonical id,
// a raw id or a display name.
type AddWantListRequest struct {
	Item   string `json:"item" validate:"required,itemref,max=200"`
	Qty    int    `json:"qty" validate:"min=1,max=100000"`
	Reason string `json:"reason" validate:"max=500"`
}

// ExpandEntry is one ad-hoc want-list entry.
type ExpandEntry struct {
	ItemID string `json:"itemId" validate:"required,itemref,max=200"`
	Qty    int    `json:"qty" validate:"min=1,max=100000"`
}

// ExpandRequest expands entries without storing them.
type ExpandRequest struct {
	Entries []ExpandEntry `json:"entries" validate:"required,min=1,max=200,dive"`
	// Ignore nil uses the configured defaults; [] ignores nothing
	Ignore  []string      `json:"ignore" validate:"max=50"`
}

// HandleList lists stored entries
// @Summary List want-list entries
// @Tags wantlist
// @Produce json
// @Success 200 {object} ListResponse[domain.WantListEntry]
// @Router /api/v1/wantlist [get]
func (h *WantListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionListWantList, err)
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(entries))
}

// HandleAdd stores an entry
// @Summary Add or update a want-list entry
// @Tags wantlist
// @Accept json
// @Produce json
// @Param request body AddWantListRequest true "entry"
// @Success 201 {object} domain.WantListEntry
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wantlist [post]
func (h *WantListHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddWantListRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionAddWantList); err != nil {
		return
	}

	entry, err := h.service.Add(r.Context(), req.Item, req.Qty, req.Reason)
	if err != nil {
		respondServiceError(w, r, ActionAddWantList, err)
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgWantListEntrySent, "id", entry.ID)
	respondJSON(w, http.StatusCreated, entry)
}

// HandleRemove deletes an entry
// @Summary Remove a want-list entry
// @Tags wantlist
// @Produce json
// @Param id path string true "entry id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wantlist/{id} [delete]
func (h *WantListHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		respondServiceError(w, r, ActionRemoveWantList, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWantListEntryRemoved})
}

// HandleResolved expands every stored entry
// @Summary Expand the stored want-list
// @Tags wantlist
// @Produce json
// @Param ignore query string false "comma separated ignored categories; omit for the configured defaults, pass empty to ignore none"
// @Success 200 {object} ListResponse[domain.WantListResolvedEntry]
// @Router /api/v1/wantlist/resolved [get]
func (h *WantListHandler) HandleResolved(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.service.Resolve(r.Context(), GetListQueryParam(r, QueryIgnore))
	if err != nil {
		respondServiceError(w, r, ActionResolve, err)
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(resolved))
}

// HandleExpand expands ad-hoc entries
// @Summary Expand entries without storing them
// @Tags wantlist
// @Accept json
// @Produce json
// @Param request body ExpandRequest true "entries"
// @Success 200 {object} ListResponse[domain.WantListResolvedEntry]
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/wantlist/expand [post]
func (h *WantListHandler) HandleExpand(w http.ResponseWriter, r *http.Request) {
	var req ExpandRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionExpand); err != nil {
		return
	}

	entries := make([]domain.WantListEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = domain.WantListEntry{ItemID: e.ItemID, Qty: e.Qty}
	}

	resolved, err := h.service.Expand(r.Context(), entries, req.Ignore)
	if err != nil {
		respondServiceError(w, r, ActionExpand, err)
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(resolved))
}
