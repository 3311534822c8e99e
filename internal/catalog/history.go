package catalog

import "sort"

// HistoryEvent is one event the timeline challenge asks players to order.
type HistoryEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

var historyEvents = []HistoryEvent{
	{ID: "ancient_times", Title: "Ancient Sámi Culture", Year: "Pre-1000", Description: "Sámi people have lived in Sápmi for thousands of years, with a rich culture based on reindeer herding, fishing, and traditional knowledge.", Position: 0},
	{ID: "kautokeino", Title: "Kautokeino Uprising", Year: "1852", Description: "A significant event where Sámi people in Kautokeino protested against unfair treatment and cultural suppression.", Position: 1},
	{ID: "assimilation", Title: "Assimilation Policies", Year: "1850-1950", Description: "Difficult period when Sámi language and culture were suppressed. Children were often not allowed to speak Sámi in schools.", Position: 2},
	{ID: "linguistic_revitalization", Title: "Linguistic Revitalization", Year: "1970s-1980s", Description: "Sámi people began working to preserve and revitalize their languages, establishing Sámi language education and media.", Position: 3},
	{ID: "sami_parliament", Title: "Sámi Parliament Established", Year: "1989", Description: "The Sámi Parliament of Norway was established, giving Sámi people a voice in political decisions affecting their communities.", Position: 4},
	{ID: "modern_rights", Title: "Modern Sámi Rights", Year: "2000s-Present", Description: "Continued work on Sámi rights, language preservation, land rights, and recognition of Sámi as an Indigenous people.", Position: 5},
}

// HistoryEvents returns the timeline events in chronological order.
func HistoryEvents() []HistoryEvent {
	out := make([]HistoryEvent, len(historyEvents))
	copy(out, historyEvents)
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}
