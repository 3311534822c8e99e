package progress

import (
	"encoding/json"
	"net/http"

	"github.com/JohanGylseth/Sami-2/internal/catalog"
)

// StateResponse is the save-state view the map and shop screens read.
type StateResponse struct {
	Artifacts           []catalog.ArtifactID  `json:"artifacts"`
	Tokens              int                   `json:"tokens"`
	CompletedChallenges []catalog.ChallengeID `json:"completedChallenges"`
	CurrentChapter      int                   `json:"currentChapter"`
	MoralChoices        map[string]string     `json:"moralChoices"`
	VillageItems        []string              `json:"villageItems"`
	FinalMission        bool                  `json:"finalMission"`
	ProgressPercentage  int                   `json:"progressPercentage"`
	Unlocked            []catalog.ChallengeID `json:"unlockedChallenges,omitempty"`
}

// Handler serves the progression state endpoints.
type Handler struct {
	trackerResolver func(*http.Request) *Tracker
	unlockedFn      func(Snapshot) []catalog.ChallengeID
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) SetTrackerResolver(fn func(*http.Request) *Tracker) {
	h.trackerResolver = fn
}

// SetUnlockedFunc supplies the unlock derivation so the state response can
// include the playable set without this package depending on the resolver.
func (h *Handler) SetUnlockedFunc(fn func(Snapshot) []catalog.ChallengeID) {
	h.unlockedFn = fn
}

func (h *Handler) trackerForRequest(r *http.Request) *Tracker {
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

// State handles GET /api/progress/state.
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
	writeJSON(w, http.StatusOK, h.stateResponse(t))
}

// Reset handles POST /api/progress/reset.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	t := h.trackerForRequest(r)
	if t == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "no progression store configured"})
		return
	}
	t.Reset()
	writeJSON(w, http.StatusOK, h.stateResponse(t))
}

func (h *Handler) stateResponse(t *Tracker) StateResponse {
	snap := t.Snapshot()
	resp := StateResponse{
		Artifacts:           snap.Artifacts,
		Tokens:              snap.Tokens,
		CompletedChallenges: snap.CompletedChallenges,
		CurrentChapter:      snap.CurrentChapter,
		MoralChoices:        snap.MoralChoices,
		VillageItems:        snap.VillageItems,
		FinalMission:        snap.FinalMission,
		ProgressPercentage:  t.ProgressPercentage(),
	}
	if h.unlockedFn != nil {
		resp.Unlocked = h.unlockedFn(snap)
	}
	return resp
}
