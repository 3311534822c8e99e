package config

// Balance holds the token economy tuning.
type Balance struct {
	ArtifactAward     int `yaml:"artifact_award" json:"artifact_award"`
	MoralCorrectAward int `yaml:"moral_correct_award" json:"moral_correct_award"`
	FinalMissionAward int `yaml:"final_mission_award" json:"final_mission_award"`
}

// Default returns the stock awards: 50 tokens per first-time artifact,
// 20 per wise moral choice, 100 for the final mission.
func Default() Balance {
	return Balance{
		ArtifactAward:     50,
		MoralCorrectAward: 20,
		FinalMissionAward: 100,
	}
}
