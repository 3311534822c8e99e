package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeArtifactMappingIsOneToOne(t *testing.T) {
	require.Len(t, ChallengeOrder, TotalChallenges)
	require.Len(t, AllArtifacts, TotalChallenges)

	seen := map[ArtifactID]bool{}
	for _, id := range ChallengeOrder {
		a, ok := ArtifactFor(id)
		require.True(t, ok, "challenge %s has no artifact", id)
		assert.False(t, seen[a], "artifact %s rewarded by two challenges", a)
		seen[a] = true

		back, ok := ChallengeFor(a)
		require.True(t, ok)
		assert.Equal(t, id, back)
	}
}

func TestChallengeOrderMatchesMap(t *testing.T) {
	want := []ArtifactID{
		ArtifactRunebomme,
		ArtifactReindeerAmulet,
		ArtifactDuodjiPattern,
		ArtifactEnvironmentalStone,
		ArtifactYoikCrystal,
		ArtifactHistoryScroll,
		ArtifactWisdomToken,
	}
	for i, id := range ChallengeOrder {
		a, ok := ArtifactFor(id)
		require.True(t, ok)
		assert.Equal(t, want[i], a)
	}
}

func TestUnknownIDs(t *testing.T) {
	assert.False(t, KnownChallenge("snowmobileRace"))
	assert.False(t, KnownArtifact("golden_ski"))

	_, ok := ArtifactFor("snowmobileRace")
	assert.False(t, ok)
	_, ok = VillageItemByID("nope")
	assert.False(t, ok)
	_, ok = MoralScenarioByID("choice99")
	assert.False(t, ok)
}

func TestVillageItemsHavePositiveCosts(t *testing.T) {
	items := VillageItems()
	require.NotEmpty(t, items)
	for _, it := range items {
		assert.Greater(t, it.Cost, 0, "item %s", it.ID)
		assert.NotEmpty(t, it.Name, "item %s", it.ID)
	}

	buildings := VillageItemsByCategory(CategoryBuilding)
	for _, it := range buildings {
		assert.Equal(t, CategoryBuilding, it.Category)
	}
}

func TestMoralScenariosHaveExactlyOneCorrectOption(t *testing.T) {
	scenarios := MoralScenarios()
	require.Len(t, scenarios, 3)
	for _, s := range scenarios {
		correct := 0
		for _, opt := range s.Options {
			if opt.Correct {
				correct++
			}
			assert.NotEmpty(t, opt.Explanation)
		}
		assert.Equal(t, 1, correct, "scenario %s", s.ID)
	}
}

func TestMoralChoiceCorrect(t *testing.T) {
	correct, known := MoralChoiceCorrect("choice1", "Tell them to stop and explain why the area is protected")
	assert.True(t, known)
	assert.True(t, correct)

	correct, known = MoralChoiceCorrect("choice1", "Ignore it - it's not your problem")
	assert.True(t, known)
	assert.False(t, correct)

	_, known = MoralChoiceCorrect("choice1", "Call the newspaper")
	assert.False(t, known)

	_, known = MoralChoiceCorrect("choice99", "anything")
	assert.False(t, known)
}

func TestRandomVocabulary(t *testing.T) {
	assert.Len(t, RandomVocabulary(5), 5)
	assert.Len(t, RandomVocabulary(100), len(Vocabulary()))
	assert.Empty(t, RandomVocabulary(0))

	nature := VocabularyByCategory("nature")
	require.NotEmpty(t, nature)
	for _, v := range nature {
		assert.Equal(t, "nature", v.Category)
	}
}

func TestHistoryEventsSorted(t *testing.T) {
	events := HistoryEvents()
	require.Len(t, events, 6)
	for i, ev := range events {
		assert.Equal(t, i, ev.Position)
	}
}
