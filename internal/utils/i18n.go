package utils

// Minimal server-side i18n for fixed keys. The presentation layer owns its
// own strings; the server only localizes the projections it builds itself.

var translations = map[string]map[string]string{
	"en": {
		"health.ok":      "ok",
		"cards.counter":  "Card %d / %d",
		"cards.empty":    "No cards in this collection.",
		"quiz.progress":  "Question %d / %d",
		"quiz.score":     "Score: %d",
		"quiz.result":    "Score: %d / %d",
		"quiz.best":      "Best score: %d / %d",
		"quiz.best.none": "Best score: — / %d",
		"quiz.correct":   "Correct",
		"quiz.incorrect": "Incorrect",
	},
	"fr": {
		"health.ok":      "ok",
		"cards.counter":  "Carte %d / %d",
		"cards.empty":    "Aucune carte dans cette collection.",
		"quiz.progress":  "Question %d / %d",
		"quiz.score":     "Score : %d",
		"quiz.result":    "Score : %d / %d",
		"quiz.best":      "Meilleur score : %d / %d",
		"quiz.best.none": "Meilleur score : — / %d",
		"quiz.correct":   "Bonne réponse",
		"quiz.incorrect": "Mauvaise réponse",
	},
}

// T returns the translated string for key in locale; falls back to English.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations["en"][key]; ok {
		return v
	}
	return key
}
