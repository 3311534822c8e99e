package catalog

// MoralOption is one selectable answer in a moral-choice scenario.
type MoralOption struct {
	Text        string `json:"text"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// MoralScenario is a dilemma with one respectful answer and its alternatives.
type MoralScenario struct {
	ID       string        `json:"id"`
	Scenario string        `json:"scenario"`
	Options  []MoralOption `json:"options"`
}

var moralScenarios = []MoralScenario{
	{
		ID:       "choice1",
		Scenario: "You see someone picking rare plants in a protected area. What do you do?",
		Options: []MoralOption{
			{Text: "Tell them to stop and explain why the area is protected", Correct: true, Explanation: "Respecting protected areas shows understanding of environmental stewardship."},
			{Text: "Ignore it - it's not your problem", Correct: false, Explanation: "We all have a responsibility to protect the environment."},
			{Text: "Join them in picking plants", Correct: false, Explanation: "Protected areas need our respect and care."},
		},
	},
	{
		ID:       "choice2",
		Scenario: "You find an old Sámi artifact. What should you do?",
		Options: []MoralOption{
			{Text: "Report it to local Sámi authorities or museum", Correct: true, Explanation: "Cultural artifacts belong to the community and should be handled with respect."},
			{Text: "Keep it as a souvenir", Correct: false, Explanation: "Cultural artifacts are important to the community and should be shared."},
			{Text: "Sell it", Correct: false, Explanation: "Cultural artifacts have value beyond money - they represent heritage."},
		},
	},
	{
		ID:       "choice3",
		Scenario: "A reindeer herd is blocking a road. How do you respond?",
		Options: []MoralOption{
			{Text: "Wait patiently for the herd to pass", Correct: true, Explanation: "Reindeer herding is a traditional livelihood that requires patience and respect."},
			{Text: "Honk your horn to hurry them along", Correct: false, Explanation: "This could stress the animals and disrupt the herder's work."},
			{Text: "Drive around them quickly", Correct: false, Explanation: "This could harm the animals and is dangerous."},
		},
	},
}

var moralScenarioByID = func() map[string]MoralScenario {
	m := make(map[string]MoralScenario, len(moralScenarios))
	for _, s := range moralScenarios {
		m[s.ID] = s
	}
	return m
}()

// MoralScenarios returns every scenario in presentation order.
func MoralScenarios() []MoralScenario {
	out := make([]MoralScenario, len(moralScenarios))
	copy(out, moralScenarios)
	return out
}

// MoralScenarioByID looks up a scenario.
func MoralScenarioByID(id string) (MoralScenario, bool) {
	s, ok := moralScenarioByID[id]
	return s, ok
}

// MoralScenarioIDs returns the ids whose coverage completes the challenge.
func MoralScenarioIDs() []string {
	out := make([]string, 0, len(moralScenarios))
	for _, s := range moralScenarios {
		out = append(out, s.ID)
	}
	return out
}

// MoralChoiceCorrect reports whether choiceText is the correct option for the
// scenario, and whether the scenario+option pair is known at all.
func MoralChoiceCorrect(scenarioID, choiceText string) (correct, known bool) {
	s, ok := moralScenarioByID[scenarioID]
	if !ok {
		return false, false
	}
	for _, opt := range s.Options {
		if opt.Text == choiceText {
			return opt.Correct, true
		}
	}
	return false, false
}
