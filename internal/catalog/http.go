package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Handler serves the static catalog feeds the mini-game scenes consume.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Vocabulary serves the language-puzzle word list. Supports ?category= and
// ?sample=N for a shuffled draw.
func (h *Handler) Vocabulary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if s := r.URL.Query().Get("sample"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "sample must be a non-negative integer"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"words": RandomVocabulary(n)})
		return
	}

	words := Vocabulary()
	if cat := r.URL.Query().Get("category"); cat != "" {
		words = VocabularyByCategory(cat)
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": words})
}

// History serves the timeline events in chronological order.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": HistoryEvents()})
}

// Scenarios serves the moral-choice scenario definitions.
func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenarios": MoralScenarios()})
}

// Items serves the village shop catalog.
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	items := VillageItems()
	if cat := r.URL.Query().Get("category"); cat != "" {
		items = VillageItemsByCategory(ItemCategory(cat))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
