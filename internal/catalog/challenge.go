package catalog

// ChallengeID identifies one of the seven mini-game challenges.
type ChallengeID string

const (
	ChallengeLanguagePuzzle  ChallengeID = "languagePuzzle"
	ChallengeReindeerHerding ChallengeID = "reindeerHerding"
	ChallengeDuodjiCrafting  ChallengeID = "duodjiCrafting"
	ChallengeEnvironmental   ChallengeID = "environmental"
	ChallengeYoikPuzzle      ChallengeID = "yoikPuzzle"
	ChallengeHistoryTimeline ChallengeID = "historyTimeline"
	ChallengeMoralChoice     ChallengeID = "moralChoice"
)

// ChallengeOrder is the fixed play order. Challenge i+1 unlocks once the
// artifact of challenge i is owned; the first challenge is always open.
var ChallengeOrder = []ChallengeID{
	ChallengeLanguagePuzzle,
	ChallengeReindeerHerding,
	ChallengeDuodjiCrafting,
	ChallengeEnvironmental,
	ChallengeYoikPuzzle,
	ChallengeHistoryTimeline,
	ChallengeMoralChoice,
}

// TotalChallenges is the size of the closed challenge set.
const TotalChallenges = 7

// Challenge describes one mini-game as the map screen presents it.
type Challenge struct {
	ID          ChallengeID `json:"id"`
	Title       string      `json:"title"`
	Instruction string      `json:"instruction"`
	Artifact    ArtifactID  `json:"artifact"`
}

var challenges = map[ChallengeID]Challenge{
	ChallengeLanguagePuzzle: {
		ID:          ChallengeLanguagePuzzle,
		Title:       "Learn Sámi Words",
		Instruction: "Match the Sámi words to their meanings.",
		Artifact:    ArtifactRunebomme,
	},
	ChallengeReindeerHerding: {
		ID:          ChallengeReindeerHerding,
		Title:       "Guide the Reindeer",
		Instruction: "Guide the reindeer herd to the safe grazing area.",
		Artifact:    ArtifactReindeerAmulet,
	},
	ChallengeDuodjiCrafting: {
		ID:          ChallengeDuodjiCrafting,
		Title:       "Create Traditional Patterns",
		Instruction: "Arrange pattern pieces into a traditional Sámi design.",
		Artifact:    ArtifactDuodjiPattern,
	},
	ChallengeEnvironmental: {
		ID:          ChallengeEnvironmental,
		Title:       "Balance the Ecosystem",
		Instruction: "Balance grazing, fishing, and gathering to keep the land healthy.",
		Artifact:    ArtifactEnvironmentalStone,
	},
	ChallengeYoikPuzzle: {
		ID:          ChallengeYoikPuzzle,
		Title:       "Learn About Joik",
		Instruction: "Listen to the rhythm patterns and repeat them.",
		Artifact:    ArtifactYoikCrystal,
	},
	ChallengeHistoryTimeline: {
		ID:          ChallengeHistoryTimeline,
		Title:       "Sámi History Timeline",
		Instruction: "Place historical events in the correct order.",
		Artifact:    ArtifactHistoryScroll,
	},
	ChallengeMoralChoice: {
		ID:          ChallengeMoralChoice,
		Title:       "Make a Choice",
		Instruction: "Consider respect for land, animals, and cultural heritage.",
		Artifact:    ArtifactWisdomToken,
	},
}

var challengeByArtifact = func() map[ArtifactID]ChallengeID {
	m := make(map[ArtifactID]ChallengeID, len(challenges))
	for id, c := range challenges {
		m[c.Artifact] = id
	}
	return m
}()

// Challenges returns the full challenge definitions in play order.
func Challenges() []Challenge {
	out := make([]Challenge, 0, len(ChallengeOrder))
	for _, id := range ChallengeOrder {
		out = append(out, challenges[id])
	}
	return out
}

// ChallengeByID looks up a challenge definition.
func ChallengeByID(id ChallengeID) (Challenge, bool) {
	c, ok := challenges[id]
	return c, ok
}

// KnownChallenge reports whether id belongs to the closed challenge set.
func KnownChallenge(id ChallengeID) bool {
	_, ok := challenges[id]
	return ok
}

// ArtifactFor returns the artifact a challenge rewards.
func ArtifactFor(id ChallengeID) (ArtifactID, bool) {
	c, ok := challenges[id]
	if !ok {
		return "", false
	}
	return c.Artifact, true
}

// ChallengeFor returns the challenge that rewards an artifact.
func ChallengeFor(id ArtifactID) (ChallengeID, bool) {
	c, ok := challengeByArtifact[id]
	return c, ok
}
