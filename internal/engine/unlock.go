package engine

import (
	"github.com/JohanGylseth/Sami-2/internal/catalog"
	"github.com/JohanGylseth/Sami-2/internal/progress"
)

// UnlockedChallenges derives the playable set from a snapshot. The gate is
// a strict linear chain: the first challenge is always open, every later
// one opens only when the immediately preceding challenge's artifact is
// owned. Owning a later artifact without the one before it unlocks nothing
// extra; the walk looks one step back, never at cumulative counts.
func UnlockedChallenges(snap progress.Snapshot) []catalog.ChallengeID {
	out := []catalog.ChallengeID{catalog.ChallengeOrder[0]}
	for i := 1; i < len(catalog.ChallengeOrder); i++ {
		prev, _ := catalog.ArtifactFor(catalog.ChallengeOrder[i-1])
		if snap.HasArtifact(prev) {
			out = append(out, catalog.ChallengeOrder[i])
		}
	}
	return out
}

// IsUnlocked reports whether a single challenge is currently playable.
func IsUnlocked(snap progress.Snapshot, id catalog.ChallengeID) bool {
	for i, c := range catalog.ChallengeOrder {
		if c != id {
			continue
		}
		if i == 0 {
			return true
		}
		prev, _ := catalog.ArtifactFor(catalog.ChallengeOrder[i-1])
		return snap.HasArtifact(prev)
	}
	return false
}

// FinalMissionUnlocked reports whether the final mission is open: every
// artifact must be collected first.
func FinalMissionUnlocked(snap progress.Snapshot) bool {
	for _, a := range catalog.AllArtifacts {
		if !snap.HasArtifact(a) {
			return false
		}
	}
	return true
}
