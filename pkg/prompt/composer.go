// Package prompt assembles the role-tagged message sequence sent to the chat
// model. Block order is fixed: persona, then profile context when known, then
// retrieved references, then the user turn.
package prompt

import (
	"fmt"
	"strings"

	"medisos-be/pkg/llm"
)

const personaInstructions = "You are a mental health assessment assistant. Be empathetic and supportive. " +
	"Do NOT diagnose. If the user seems at risk, gently ask whether they want to be connected to help. " +
	"After your reply append JSON: {\"risk_score\":int,\"emotion\":\"str\",\"confidence\":float}."

// Profile carries the facts appended as system context for known users.
// A nil Profile means an anonymous session and emits nothing.
type Profile struct {
	FirstName      string
	LastName       string
	AgeGroup       string
	CounselorName  string
	CounselorEmail string
}

// Compose builds the outbound message sequence for one chat turn.
func Compose(profile *Profile, passages []string, userTurn string) []llm.Message {
	messages := []llm.Message{
		{Role: "system", Content: personaInstructions},
	}

	if profile != nil {
		info := fmt.Sprintf("User profile: first_name=%s, last_name=%s, age_group=%s.",
			profile.FirstName, profile.LastName, profile.AgeGroup)
		if profile.CounselorName != "" {
			info += fmt.Sprintf(" Assigned counselor: %s (%s).", profile.CounselorName, profile.CounselorEmail)
		}
		messages = append(messages, llm.Message{Role: "system", Content: info})
	}

	if len(passages) > 0 {
		messages = append(messages, llm.Message{
			Role:    "system",
			Content: "References:\n" + strings.Join(passages, "\n\n---\n\n"),
		})
	}

	return append(messages, llm.Message{Role: "user", Content: userTurn})
}
