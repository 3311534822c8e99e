package progress

import (
	"github.com/JohanGylseth/Sami-2/internal/catalog"
)

// Snapshot is the persisted save document, one per profile. Missing fields
// default to empty collections on load so old saves keep working.
type Snapshot struct {
	Artifacts           []catalog.ArtifactID  `json:"artifacts"`
	Tokens              int                   `json:"tokens"`
	CompletedChallenges []catalog.ChallengeID `json:"completedChallenges"`
	CurrentChapter      int                   `json:"currentChapter"`
	MoralChoices        map[string]string     `json:"moralChoices"`
	VillageItems        []string              `json:"villageItems"`
	FinalMission        bool                  `json:"finalMission,omitempty"`
	LastSaved           int64                 `json:"lastSaved,omitempty"`
}

func defaultSnapshot() Snapshot {
	return Snapshot{
		Artifacts:           []catalog.ArtifactID{},
		Tokens:              0,
		CompletedChallenges: []catalog.ChallengeID{},
		CurrentChapter:      1,
		MoralChoices:        map[string]string{},
		VillageItems:        []string{},
	}
}

// normalizeSnapshot fills nil collections, drops duplicates, and clamps
// fields into their legal ranges. Applied to every loaded snapshot.
func normalizeSnapshot(s Snapshot) Snapshot {
	out := defaultSnapshot()

	seenArtifacts := map[catalog.ArtifactID]bool{}
	for _, a := range s.Artifacts {
		if a == "" || seenArtifacts[a] {
			continue
		}
		seenArtifacts[a] = true
		out.Artifacts = append(out.Artifacts, a)
	}

	seenChallenges := map[catalog.ChallengeID]bool{}
	for _, c := range s.CompletedChallenges {
		if c == "" || seenChallenges[c] {
			continue
		}
		seenChallenges[c] = true
		out.CompletedChallenges = append(out.CompletedChallenges, c)
	}

	seenItems := map[string]bool{}
	for _, v := range s.VillageItems {
		if v == "" || seenItems[v] {
			continue
		}
		seenItems[v] = true
		out.VillageItems = append(out.VillageItems, v)
	}

	for k, v := range s.MoralChoices {
		if k == "" {
			continue
		}
		out.MoralChoices[k] = v
	}

	if s.Tokens > 0 {
		out.Tokens = s.Tokens
	}
	if s.CurrentChapter > 1 {
		out.CurrentChapter = s.CurrentChapter
	}
	out.FinalMission = s.FinalMission
	out.LastSaved = s.LastSaved
	return out
}

func cloneSnapshot(s Snapshot) Snapshot {
	out := s
	out.Artifacts = append([]catalog.ArtifactID{}, s.Artifacts...)
	out.CompletedChallenges = append([]catalog.ChallengeID{}, s.CompletedChallenges...)
	out.VillageItems = append([]string{}, s.VillageItems...)
	out.MoralChoices = make(map[string]string, len(s.MoralChoices))
	for k, v := range s.MoralChoices {
		out.MoralChoices[k] = v
	}
	return out
}

// HasArtifact reports whether the snapshot contains an artifact.
func (s Snapshot) HasArtifact(id catalog.ArtifactID) bool {
	for _, a := range s.Artifacts {
		if a == id {
			return true
		}
	}
	return false
}

// HasCompleted reports whether the snapshot records a challenge as done.
func (s Snapshot) HasCompleted(id catalog.ChallengeID) bool {
	for _, c := range s.CompletedChallenges {
		if c == id {
			return true
		}
	}
	return false
}

// HasVillageItem reports whether the snapshot owns a village item.
func (s Snapshot) HasVillageItem(id string) bool {
	for _, v := range s.VillageItems {
		if v == id {
			return true
		}
	}
	return false
}
