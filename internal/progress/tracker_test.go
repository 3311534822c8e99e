package progress

import (
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohanGylseth/Sami-2/internal/catalog"
)

func newTestTracker(t *testing.T) (*Tracker, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return NewTracker(store, "test", log.New(os.Stderr, "", 0)), store
}

func TestAddArtifactIsIdempotent(t *testing.T) {
	tr, _ := newTestTracker(t)

	assert.True(t, tr.AddArtifact(catalog.ArtifactRunebomme))
	assert.False(t, tr.AddArtifact(catalog.ArtifactRunebomme))

	assert.Equal(t, []catalog.ArtifactID{catalog.ArtifactRunebomme}, tr.Artifacts())
	assert.True(t, tr.HasArtifact(catalog.ArtifactRunebomme))
}

func TestAddArtifactRejectsUnknownID(t *testing.T) {
	tr, _ := newTestTracker(t)
	assert.False(t, tr.AddArtifact("golden_ski"))
	assert.Empty(t, tr.Artifacts())
}

func TestCompleteChallengeIsIdempotent(t *testing.T) {
	tr, _ := newTestTracker(t)

	assert.True(t, tr.CompleteChallenge(catalog.ChallengeLanguagePuzzle))
	assert.False(t, tr.CompleteChallenge(catalog.ChallengeLanguagePuzzle))
	assert.True(t, tr.IsChallengeCompleted(catalog.ChallengeLanguagePuzzle))
}

func TestAddTokensRejectsNegativeBalance(t *testing.T) {
	tr, _ := newTestTracker(t)

	assert.True(t, tr.AddTokens(30))
	assert.False(t, tr.AddTokens(-50))
	assert.Equal(t, 30, tr.TokenCount())
	assert.True(t, tr.AddTokens(-30))
	assert.Equal(t, 0, tr.TokenCount())
}

func TestBuyVillageItemIsAtomic(t *testing.T) {
	tr, _ := newTestTracker(t)
	require.True(t, tr.AddTokens(100))

	already, bought := tr.BuyVillageItem("reindeer_statue", 30)
	assert.False(t, already)
	assert.True(t, bought)
	assert.Equal(t, 70, tr.TokenCount())
	assert.True(t, tr.HasVillageItem("reindeer_statue"))

	// Repeat purchase is rejected and does not debit again.
	already, bought = tr.BuyVillageItem("reindeer_statue", 30)
	assert.True(t, already)
	assert.False(t, bought)
	assert.Equal(t, 70, tr.TokenCount())

	// Unaffordable purchase leaves state unchanged.
	already, bought = tr.BuyVillageItem("northern_lights", 75)
	assert.False(t, already)
	assert.False(t, bought)
	assert.Equal(t, 70, tr.TokenCount())
	assert.False(t, tr.HasVillageItem("northern_lights"))
}

func TestProgressPercentage(t *testing.T) {
	tr, _ := newTestTracker(t)
	assert.Equal(t, 0, tr.ProgressPercentage())

	tr.CompleteChallenge(catalog.ChallengeLanguagePuzzle)
	tr.CompleteChallenge(catalog.ChallengeReindeerHerding)
	tr.CompleteChallenge(catalog.ChallengeDuodjiCrafting)
	assert.Equal(t, 43, tr.ProgressPercentage()) // round(100*3/7)

	tr.CompleteChallenge(catalog.ChallengeEnvironmental)
	tr.CompleteChallenge(catalog.ChallengeYoikPuzzle)
	tr.CompleteChallenge(catalog.ChallengeHistoryTimeline)
	tr.CompleteChallenge(catalog.ChallengeMoralChoice)
	assert.Equal(t, 100, tr.ProgressPercentage())
}

func TestRoundTripThroughStore(t *testing.T) {
	store := NewMemoryStore()
	logger := log.New(os.Stderr, "", 0)

	tr := NewTracker(store, "p1", logger)
	tr.AddArtifact(catalog.ArtifactRunebomme)
	tr.AddArtifact(catalog.ArtifactReindeerAmulet)
	tr.AddTokens(120)
	tr.CompleteChallenge(catalog.ChallengeLanguagePuzzle)
	tr.RecordMoralChoice("choice1", "Tell them to stop and explain why the area is protected")
	tr.BuyVillageItem("sami_flag", 25)
	tr.AdvanceChapter(3)

	// A fresh tracker over the same store must reproduce the state.
	reloaded := NewTracker(store, "p1", logger)
	want := tr.Snapshot()
	got := reloaded.Snapshot()
	assert.Equal(t, want.Artifacts, got.Artifacts)
	assert.Equal(t, want.Tokens, got.Tokens)
	assert.Equal(t, want.CompletedChallenges, got.CompletedChallenges)
	assert.Equal(t, want.MoralChoices, got.MoralChoices)
	assert.Equal(t, want.VillageItems, got.VillageItems)
	assert.Equal(t, 3, reloaded.Chapter())
}

func TestResetRestoresDefaultsAcrossReload(t *testing.T) {
	store := NewMemoryStore()
	logger := log.New(os.Stderr, "", 0)

	tr := NewTracker(store, "p1", logger)
	tr.AddArtifact(catalog.ArtifactRunebomme)
	tr.AddTokens(50)
	tr.CompleteChallenge(catalog.ChallengeLanguagePuzzle)
	tr.Reset()

	assert.Empty(t, tr.Artifacts())
	assert.Equal(t, 0, tr.TokenCount())
	assert.False(t, tr.IsChallengeCompleted(catalog.ChallengeLanguagePuzzle))
	assert.Equal(t, 1, tr.Chapter())
	assert.Equal(t, 0, tr.ProgressPercentage())

	reloaded := NewTracker(store, "p1", logger)
	assert.Empty(t, reloaded.Artifacts())
	assert.Equal(t, 0, reloaded.TokenCount())
	assert.Equal(t, 1, reloaded.Chapter())
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Write("p1", []byte("{not json")))

	tr := NewTracker(store, "p1", log.New(os.Stderr, "", 0))
	assert.Empty(t, tr.Artifacts())
	assert.Equal(t, 0, tr.TokenCount())

	// The defaults were persisted over the corrupt document.
	b, ok, err := store.Read("p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(b), `"artifacts"`)
}

func TestMissingFieldsDefaultOnLoad(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Write("p1", []byte(`{"tokens": 40}`)))

	tr := NewTracker(store, "p1", log.New(os.Stderr, "", 0))
	assert.Equal(t, 40, tr.TokenCount())
	assert.Empty(t, tr.Artifacts())
	assert.Empty(t, tr.VillageItems())
	assert.Equal(t, 1, tr.Chapter())
	_, ok := tr.MoralChoice("choice1")
	assert.False(t, ok)
}

func TestLoadDeduplicatesTamperedSnapshot(t *testing.T) {
	store := NewMemoryStore()
	doc := `{"artifacts":["runebomme","runebomme"],"completedChallenges":["languagePuzzle","languagePuzzle"],"tokens":-5}`
	require.NoError(t, store.Write("p1", []byte(doc)))

	tr := NewTracker(store, "p1", log.New(os.Stderr, "", 0))
	assert.Equal(t, []catalog.ArtifactID{catalog.ArtifactRunebomme}, tr.Artifacts())
	assert.Equal(t, []catalog.ChallengeID{catalog.ChallengeLanguagePuzzle}, tr.Snapshot().CompletedChallenges)
	assert.Equal(t, 0, tr.TokenCount())
}

func TestRecordMoralChoiceOverwrites(t *testing.T) {
	tr, _ := newTestTracker(t)

	assert.True(t, tr.RecordMoralChoice("choice1", "first answer"))
	assert.True(t, tr.RecordMoralChoice("choice1", "second answer"))
	v, ok := tr.MoralChoice("choice1")
	require.True(t, ok)
	assert.Equal(t, "second answer", v)

	assert.False(t, tr.RecordMoralChoice("choice99", "anything"))
}

func TestMoralChoicesComplete(t *testing.T) {
	tr, _ := newTestTracker(t)
	assert.False(t, tr.MoralChoicesComplete())

	ids := catalog.MoralScenarioIDs()
	require.Len(t, ids, 3)
	tr.RecordMoralChoice(ids[0], "a")
	tr.RecordMoralChoice(ids[1], "b")
	assert.False(t, tr.MoralChoicesComplete())
	tr.RecordMoralChoice(ids[2], "c")
	assert.True(t, tr.MoralChoicesComplete())
}

// failingStore accepts the initial default write and fails afterwards.
type failingStore struct {
	*MemoryStore
	writes int
}

func (f *failingStore) Write(key string, data []byte) error {
	f.writes++
	if f.writes > 1 {
		return errors.New("disk full")
	}
	return f.MemoryStore.Write(key, data)
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore()}
	tr := NewTracker(store, "p1", log.New(os.Stderr, "", 0))

	assert.True(t, tr.AddArtifact(catalog.ArtifactRunebomme))
	assert.True(t, tr.AddTokens(50))

	// The session keeps playing on the in-memory state.
	assert.True(t, tr.HasArtifact(catalog.ArtifactRunebomme))
	assert.Equal(t, 50, tr.TokenCount())
}

func TestMarkFinalMissionOnce(t *testing.T) {
	tr, _ := newTestTracker(t)
	assert.False(t, tr.FinalMissionDone())
	assert.True(t, tr.MarkFinalMission())
	assert.False(t, tr.MarkFinalMission())
	assert.True(t, tr.FinalMissionDone())
}
