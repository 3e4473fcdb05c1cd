package safety

import "strings"

// urgentPhrases short-circuit classification: any case-insensitive substring
// hit means the message never reaches the model.
var urgentPhrases = []string{
	"kill myself",
	"i want to die",
	"end my life",
	"suicide",
	"hurt myself",
	"it's over for me",
	"i feel like jumping from the roof",
	"die",
	"hang myself",
}

// MatchesUrgentPhrase reports whether text contains any configured urgent
// phrase. Cheap, synchronous, and infallible.
func MatchesUrgentPhrase(text string) bool {
	t := strings.ToLower(text)
	for _, phrase := range urgentPhrases {
		if strings.Contains(t, phrase) {
			return true
		}
	}
	return false
}
