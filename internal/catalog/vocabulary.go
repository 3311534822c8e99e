package catalog

import "math/rand"

// VocabularyEntry is one Northern Sámi word for the language puzzle.
type VocabularyEntry struct {
	Word          string `json:"word"`
	Translation   string `json:"translation"`
	Category      string `json:"category"`
	Pronunciation string `json:"pronunciation"`
}

var vocabulary = []VocabularyEntry{
	{Word: "boazu", Translation: "reindeer", Category: "animals", Pronunciation: "BOA-zu"},
	{Word: "gáica", Translation: "fox", Category: "animals", Pronunciation: "GAI-tsa"},
	{Word: "riekti", Translation: "ptarmigan", Category: "animals", Pronunciation: "RIEK-ti"},
	{Word: "guovža", Translation: "bear", Category: "animals", Pronunciation: "GUOV-zha"},
	{Word: "loddi", Translation: "bird", Category: "animals", Pronunciation: "LOD-di"},
	{Word: "čáhci", Translation: "water", Category: "nature", Pronunciation: "CHAH-tsi"},
	{Word: "muohtu", Translation: "snow", Category: "nature", Pronunciation: "MUOH-tu"},
	{Word: "beaivi", Translation: "sun", Category: "nature", Pronunciation: "BEA-ivi"},
	{Word: "mánnu", Translation: "moon", Category: "nature", Pronunciation: "MAN-nu"},
	{Word: "vuovdi", Translation: "forest", Category: "nature", Pronunciation: "VUOV-di"},
	{Word: "gákti", Translation: "traditional Sámi clothing", Category: "culture", Pronunciation: "GAK-ti"},
	{Word: "joiku", Translation: "to joik (sing)", Category: "culture", Pronunciation: "JOI-ku"},
	{Word: "duodji", Translation: "traditional handicraft", Category: "culture", Pronunciation: "DUOD-ji"},
	{Word: "goahti", Translation: "traditional Sámi dwelling", Category: "culture", Pronunciation: "GOAH-ti"},
	{Word: "Sápmi", Translation: "Sámi homeland", Category: "culture", Pronunciation: "SAP-mi"},
}

// Vocabulary returns every word in the language-puzzle word list.
func Vocabulary() []VocabularyEntry {
	out := make([]VocabularyEntry, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// VocabularyByCategory filters the word list by category.
func VocabularyByCategory(category string) []VocabularyEntry {
	var out []VocabularyEntry
	for _, v := range vocabulary {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

// RandomVocabulary returns up to count words in shuffled order.
func RandomVocabulary(count int) []VocabularyEntry {
	shuffled := Vocabulary()
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	if count < 0 {
		count = 0
	}
	return shuffled[:count]
}
