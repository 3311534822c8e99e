package progress

import (
	"encoding/json"
	"log"
	"math"
	"sync"
	"time"

	"github.com/JohanGylseth/Sami-2/internal/catalog"
)

// Tracker is the authoritative progression state for one profile. It loads
// its snapshot once at construction and writes through on every mutation.
// The in-memory snapshot stays authoritative when a write fails; failures
// are logged, not returned, so gameplay never aborts on a bad disk.
type Tracker struct {
	mu     sync.Mutex
	store  Store
	key    string
	logger *log.Logger
	snap   Snapshot
}

// NewTracker loads the profile's snapshot from store. A missing or corrupt
// snapshot falls back to defaults, which are persisted immediately.
func NewTracker(store Store, profileID string, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default()
	}
	t := &Tracker{store: store, key: profileID, logger: logger}

	b, ok, err := store.Read(profileID)
	if err != nil {
		logger.Printf("progress: read snapshot %q: %v (starting fresh)", profileID, err)
		ok = false
	}
	if ok {
		var loaded Snapshot
		if err := json.Unmarshal(b, &loaded); err != nil {
			logger.Printf("progress: corrupt snapshot %q: %v (starting fresh)", profileID, err)
			ok = false
		} else {
			t.snap = normalizeSnapshot(loaded)
		}
	}
	if !ok {
		t.snap = defaultSnapshot()
		t.saveLocked()
	}
	return t
}

// saveLocked serializes the current snapshot into the store. Callers hold mu.
func (t *Tracker) saveLocked() {
	t.snap.LastSaved = time.Now().UTC().UnixMilli()
	b, err := json.MarshalIndent(t.snap, "", "  ")
	if err != nil {
		t.logger.Printf("progress: marshal snapshot %q: %v", t.key, err)
		return
	}
	if err := t.store.Write(t.key, b); err != nil {
		t.logger.Printf("progress: write snapshot %q: %v (in-memory state kept)", t.key, err)
	}
}

// Snapshot returns a deep copy of the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneSnapshot(t.snap)
}

// HasArtifact reports artifact ownership.
func (t *Tracker) HasArtifact(id catalog.ArtifactID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap.HasArtifact(id)
}

// Artifacts returns owned artifacts in collection order.
func (t *Tracker) Artifacts() []catalog.ArtifactID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]catalog.ArtifactID{}, t.snap.Artifacts...)
}

// TokenCount returns the current token balance.
func (t *Tracker) TokenCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap.Tokens
}

// IsChallengeCompleted reports challenge completion.
func (t *Tracker) IsChallengeCompleted(id catalog.ChallengeID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap.HasCompleted(id)
}

// MoralChoice returns the recorded choice for a scenario, if any.
func (t *Tracker) MoralChoice(scenarioID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.snap.MoralChoices[scenarioID]
	return v, ok
}

// HasVillageItem reports village item ownership.
func (t *Tracker) HasVillageItem(itemID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap.HasVillageItem(itemID)
}

// VillageItems returns owned village item ids in purchase order.
func (t *Tracker) VillageItems() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string{}, t.snap.VillageItems...)
}

// Chapter returns the current chapter.
func (t *Tracker) Chapter() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap.CurrentChapter
}

// ProgressPercentage is the rounded share of the seven catalog challenges
// completed. Ids outside the catalog do not count.
func (t *Tracker) ProgressPercentage() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	done := 0
	for _, id := range catalog.ChallengeOrder {
		if t.snap.HasCompleted(id) {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(catalog.TotalChallenges)))
}

// FinalMissionDone reports whether the final mission was completed.
func (t *Tracker) FinalMissionDone() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap.FinalMission
}

// AddArtifact records an artifact. Reports whether it was newly added;
// unknown ids are rejected. Persists on change.
func (t *Tracker) AddArtifact(id catalog.ArtifactID) bool {
	if !catalog.KnownArtifact(id) {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snap.HasArtifact(id) {
		return false
	}
	t.snap.Artifacts = append(t.snap.Artifacts, id)
	t.saveLocked()
	return true
}

// AddTokens applies a delta to the balance. A delta that would drive the
// balance negative is rejected and leaves state unchanged; the shop
// pre-validates affordability, this is the second line.
func (t *Tracker) AddTokens(delta int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snap.Tokens+delta < 0 {
		return false
	}
	t.snap.Tokens += delta
	t.saveLocked()
	return true
}

// CompleteChallenge records a completion. Reports whether it was newly
// completed; unknown ids are rejected. Persists on change.
func (t *Tracker) CompleteChallenge(id catalog.ChallengeID) bool {
	if !catalog.KnownChallenge(id) {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snap.HasCompleted(id) {
		return false
	}
	t.snap.CompletedChallenges = append(t.snap.CompletedChallenges, id)
	t.saveLocked()
	return true
}

// RecordMoralChoice stores the chosen option text for a scenario,
// overwriting any earlier answer. Unknown scenarios are rejected.
func (t *Tracker) RecordMoralChoice(scenarioID, choiceText string) bool {
	if _, ok := catalog.MoralScenarioByID(scenarioID); !ok {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snap.MoralChoices[scenarioID] = choiceText
	t.saveLocked()
	return true
}

// MoralChoicesComplete reports whether every catalog scenario has a
// recorded choice.
func (t *Tracker) MoralChoicesComplete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range catalog.MoralScenarioIDs() {
		if _, ok := t.snap.MoralChoices[id]; !ok {
			return false
		}
	}
	return true
}

// BuyVillageItem atomically debits cost and records ownership. Both effects
// happen under one lock with one persistence write, so a reload can never
// observe a paid-but-missing (or free) item.
func (t *Tracker) BuyVillageItem(itemID string, cost int) (already, bought bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snap.HasVillageItem(itemID) {
		return true, false
	}
	if cost < 0 || t.snap.Tokens < cost {
		return false, false
	}
	t.snap.Tokens -= cost
	t.snap.VillageItems = append(t.snap.VillageItems, itemID)
	t.saveLocked()
	return false, true
}

// AdvanceChapter raises the chapter to ch. Lower values are ignored; the
// chapter only moves forward.
func (t *Tracker) AdvanceChapter(ch int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ch <= t.snap.CurrentChapter {
		return
	}
	t.snap.CurrentChapter = ch
	t.saveLocked()
}

// MarkFinalMission records final mission completion once. Reports whether
// it was newly marked.
func (t *Tracker) MarkFinalMission() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snap.FinalMission {
		return false
	}
	t.snap.FinalMission = true
	t.saveLocked()
	return true
}

// Reset restores defaults and persists immediately.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snap = defaultSnapshot()
	t.saveLocked()
}
