package engine

import (
	"github.com/JohanGylseth/Sami-2/internal/catalog"
	"github.com/JohanGylseth/Sami-2/internal/config"
	"github.com/JohanGylseth/Sami-2/internal/progress"
)

// Ledger applies challenge rewards to a tracker. It does not enforce the
// unlock gate: gating is advisory, applied by the map screen through
// UnlockedChallenges before it ever calls in here. The ledger's own
// guarantees are idempotence ones: an artifact and its first-time token
// bonus are granted together exactly once, replays award nothing.
type Ledger struct {
	tracker *progress.Tracker
	balance config.Balance
}

func NewLedger(tracker *progress.Tracker, balance config.Balance) *Ledger {
	return &Ledger{tracker: tracker, balance: balance}
}

// GrantResult reports what a completion call actually changed.
type GrantResult struct {
	Challenge       catalog.ChallengeID `json:"challenge"`
	Accepted        bool                `json:"accepted"`
	Reason          string              `json:"reason,omitempty"`
	ArtifactGranted bool                `json:"artifactGranted"`
	TokensAwarded   int                 `json:"tokensAwarded"`
	NewlyCompleted  bool                `json:"newlyCompleted"`
}

// GrantChallengeReward records a finished mini-game: grants the challenge's
// artifact plus tokenAward tokens on first collection, and marks the
// challenge completed (idempotent). The moral-choice challenge cannot be
// granted directly; it completes through RecordMoralChoice once every
// scenario has an answer.
func (l *Ledger) GrantChallengeReward(id catalog.ChallengeID, tokenAward int) GrantResult {
	res := GrantResult{Challenge: id}

	c, ok := catalog.ChallengeByID(id)
	if !ok {
		res.Reason = "unknown challenge"
		return res
	}
	if id == catalog.ChallengeMoralChoice && !l.tracker.MoralChoicesComplete() {
		res.Reason = "moral scenarios unresolved"
		return res
	}
	res.Accepted = true

	if l.tracker.AddArtifact(c.Artifact) {
		res.ArtifactGranted = true
		if tokenAward > 0 && l.tracker.AddTokens(tokenAward) {
			res.TokensAwarded = tokenAward
		}
	}
	res.NewlyCompleted = l.tracker.CompleteChallenge(id)
	if res.NewlyCompleted {
		l.advanceChapter()
	}
	return res
}

// ChoiceResult reports the outcome of one moral-choice answer.
type ChoiceResult struct {
	ScenarioID         string `json:"scenarioId"`
	Accepted           bool   `json:"accepted"`
	Reason             string `json:"reason,omitempty"`
	Correct            bool   `json:"correct"`
	Explanation        string `json:"explanation,omitempty"`
	TokensAwarded      int    `json:"tokensAwarded"`
	AllResolved        bool   `json:"allResolved"`
	ArtifactGranted    bool   `json:"artifactGranted"`
	ChallengeCompleted bool   `json:"challengeCompleted"`
}

// RecordMoralChoice stores an answer (overwriting any earlier one), pays
// the wise-decision bonus for a correct option, and, once all scenarios
// are answered, grants the wisdom token and completes the challenge. The
// per-answer bonus is not idempotence-gated: re-answering a scenario
// correctly pays again.
func (l *Ledger) RecordMoralChoice(scenarioID, choiceText string) ChoiceResult {
	res := ChoiceResult{ScenarioID: scenarioID}

	scenario, ok := catalog.MoralScenarioByID(scenarioID)
	if !ok {
		res.Reason = "unknown scenario"
		return res
	}
	if !l.tracker.RecordMoralChoice(scenarioID, choiceText) {
		res.Reason = "unknown scenario"
		return res
	}
	res.Accepted = true

	for _, opt := range scenario.Options {
		if opt.Text == choiceText {
			res.Correct = opt.Correct
			res.Explanation = opt.Explanation
			break
		}
	}
	if res.Correct && l.balance.MoralCorrectAward > 0 && l.tracker.AddTokens(l.balance.MoralCorrectAward) {
		res.TokensAwarded = l.balance.MoralCorrectAward
	}

	if l.tracker.MoralChoicesComplete() {
		res.AllResolved = true
		if l.tracker.AddArtifact(catalog.ArtifactWisdomToken) {
			res.ArtifactGranted = true
			if l.balance.ArtifactAward > 0 && l.tracker.AddTokens(l.balance.ArtifactAward) {
				res.TokensAwarded += l.balance.ArtifactAward
			}
		}
		res.ChallengeCompleted = l.tracker.CompleteChallenge(catalog.ChallengeMoralChoice)
		if res.ChallengeCompleted {
			l.advanceChapter()
		}
	}
	return res
}

// FinalMissionResult reports a final-mission completion attempt.
type FinalMissionResult struct {
	Accepted         bool                 `json:"accepted"`
	AlreadyDone      bool                 `json:"alreadyDone"`
	TokensAwarded    int                  `json:"tokensAwarded"`
	MissingArtifacts []catalog.ArtifactID `json:"missingArtifacts,omitempty"`
}

// CompleteFinalMission pays out the restoration bonus once all seven
// artifacts are owned. Repeat calls report alreadyDone without paying.
func (l *Ledger) CompleteFinalMission() FinalMissionResult {
	res := FinalMissionResult{}

	snap := l.tracker.Snapshot()
	for _, a := range catalog.AllArtifacts {
		if !snap.HasArtifact(a) {
			res.MissingArtifacts = append(res.MissingArtifacts, a)
		}
	}
	if len(res.MissingArtifacts) > 0 {
		return res
	}
	res.Accepted = true

	if !l.tracker.MarkFinalMission() {
		res.AlreadyDone = true
		return res
	}
	if l.balance.FinalMissionAward > 0 && l.tracker.AddTokens(l.balance.FinalMissionAward) {
		res.TokensAwarded = l.balance.FinalMissionAward
	}
	return res
}

// advanceChapter keeps the advisory chapter counter one ahead of the
// number of completed catalog challenges.
func (l *Ledger) advanceChapter() {
	snap := l.tracker.Snapshot()
	done := 0
	for _, id := range catalog.ChallengeOrder {
		if snap.HasCompleted(id) {
			done++
		}
	}
	l.tracker.AdvanceChapter(done + 1)
}
