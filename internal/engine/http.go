package engine

import (
	"encoding/json"
	"net/http"

	"github.com/JohanGylseth/Sami-2/internal/catalog"
	"github.com/JohanGylseth/Sami-2/internal/config"
	"github.com/JohanGylseth/Sami-2/internal/progress"
)

// ChallengeItem is one map-screen marker.
type ChallengeItem struct {
	ID            catalog.ChallengeID `json:"id"`
	Title         string              `json:"title"`
	Instruction   string              `json:"instruction"`
	Artifact      catalog.ArtifactID  `json:"artifact"`
	Unlocked      bool                `json:"unlocked"`
	Completed     bool                `json:"completed"`
	ArtifactOwned bool                `json:"artifactOwned"`
}

// ChallengesResponse is the full map state.
type ChallengesResponse struct {
	Challenges           []ChallengeItem `json:"challenges"`
	FinalMissionUnlocked bool            `json:"finalMissionUnlocked"`
	FinalMissionDone     bool            `json:"finalMissionDone"`
}

// Handler serves the challenge endpoints.
type Handler struct {
	balance         config.Balance
	trackerResolver func(*http.Request) *progress.Tracker
}

func NewHandler(balance config.Balance) *Handler {
	return &Handler{balance: balance}
}

func (h *Handler) SetTrackerResolver(fn func(*http.Request) *progress.Tracker) {
	h.trackerResolver = fn
}

func (h *Handler) ledgerForRequest(r *http.Request) (*progress.Tracker, *Ledger) {
	if h.trackerResolver == nil {
		return nil, nil
	}
	t := h.trackerResolver(r)
	if t == nil {
		return nil, nil
	}
	return t, NewLedger(t, h.balance)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeNoTracker(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "no progression store configured"})
}

// Challenges handles GET /api/challenges: every challenge with its unlock
// and completion status, plus the final mission gate.
func (h *Handler) Challenges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	t, _ := h.ledgerForRequest(r)
	if t == nil {
		writeNoTracker(w)
		return
	}
	snap := t.Snapshot()

	resp := ChallengesResponse{
		FinalMissionUnlocked: FinalMissionUnlocked(snap),
		FinalMissionDone:     snap.FinalMission,
	}
	for _, c := range catalog.Challenges() {
		resp.Challenges = append(resp.Challenges, ChallengeItem{
			ID:            c.ID,
			Title:         c.Title,
			Instruction:   c.Instruction,
			Artifact:      c.Artifact,
			Unlocked:      IsUnlocked(snap, c.ID),
			Completed:     snap.HasCompleted(c.ID),
			ArtifactOwned: snap.HasArtifact(c.Artifact),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Complete handles POST /api/challenges/complete. The body names the
// finished challenge; the token award comes from server config, never from
// the client.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ChallengeID catalog.ChallengeID `json:"challengeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ChallengeID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "challengeId is required"})
		return
	}
	_, ledger := h.ledgerForRequest(r)
	if ledger == nil {
		writeNoTracker(w)
		return
	}

	res := ledger.GrantChallengeReward(body.ChallengeID, h.balance.ArtifactAward)
	if !res.Accepted {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Choice handles POST /api/choices.
func (h *Handler) Choice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ScenarioID string `json:"scenarioId"`
		ChoiceText string `json:"choiceText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ScenarioID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "scenarioId is required"})
		return
	}
	_, ledger := h.ledgerForRequest(r)
	if ledger == nil {
		writeNoTracker(w)
		return
	}

	res := ledger.RecordMoralChoice(body.ScenarioID, body.ChoiceText)
	if !res.Accepted {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// FinalMission handles POST /api/final-mission/complete.
func (h *Handler) FinalMission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	_, ledger := h.ledgerForRequest(r)
	if ledger == nil {
		writeNoTracker(w)
		return
	}

	res := ledger.CompleteFinalMission()
	if !res.Accepted {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
