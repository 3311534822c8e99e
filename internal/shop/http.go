package shop

import (
	"encoding/json"
	"net/http"

	"github.com/JohanGylseth/Sami-2/internal/catalog"
	"github.com/JohanGylseth/Sami-2/internal/progress"
)

// ShopItem is one catalog entry decorated with the profile's view of it.
type ShopItem struct {
	catalog.VillageItem
	Owned      bool `json:"owned"`
	Affordable bool `json:"affordable"`
}

// StateResponse is the shop screen's full state.
type StateResponse struct {
	Tokens int        `json:"tokens"`
	Items  []ShopItem `json:"items"`
}

// Handler serves the village shop endpoints.
type Handler struct {
	trackerResolver func(*http.Request) *progress.Tracker
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) SetTrackerResolver(fn func(*http.Request) *progress.Tracker) {
	h.trackerResolver = fn
}

func (h *Handler) trackerForRequest(r *http.Request) *progress.Tracker {
	if h.trackerResolver == nil {
		return nil
	}
	return h.trackerResolver(r)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// State handles GET /api/village/shop.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	t := h.trackerForRequest(r)
	if t == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "no progression store configured"})
		return
	}

	tokens := t.TokenCount()
	resp := StateResponse{Tokens: tokens}
	for _, it := range catalog.VillageItems() {
		resp.Items = append(resp.Items, ShopItem{
			VillageItem: it,
			Owned:       t.HasVillageItem(it.ID),
			Affordable:  tokens >= it.Cost,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Purchase handles POST /api/village/purchase.
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ItemID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "itemId is required"})
		return
	}
	t := h.trackerForRequest(r)
	if t == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "no progression store configured"})
		return
	}

	out := New(t).Purchase(body.ItemID)
	switch out.Status {
	case StatusPurchased:
		writeJSON(w, http.StatusOK, out)
	case StatusUnknownItem:
		writeJSON(w, http.StatusNotFound, out)
	default:
		writeJSON(w, http.StatusUnprocessableEntity, out)
	}
}
