package prompt

import (
	"strings"
	"testing"
)

func TestComposeAnonymousNoPassages(t *testing.T) {
	messages := Compose(nil, nil, "I feel anxious")

	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2 (persona + user turn)", len(messages))
	}
	if messages[0].Role != "system" || !strings.Contains(messages[0].Content, "Do NOT diagnose") {
		t.Errorf("first message must be the persona block, got %+v", messages[0])
	}
	if messages[1].Role != "user" || messages[1].Content != "I feel anxious" {
		t.Errorf("last message must be the user turn, got %+v", messages[1])
	}
}

func TestComposeFullOrdering(t *testing.T) {
	profile := &Profile{
		FirstName:      "Ami",
		LastName:       "Tan",
		AgeGroup:       "18-25",
		CounselorName:  "Dr. Rhee",
		CounselorEmail: "rhee@example.com",
	}
	passages := []string{"slide one text", "slide two text"}

	messages := Compose(profile, passages, "how do I cope with stress")

	if len(messages) != 4 {
		t.Fatalf("got %d messages, want 4", len(messages))
	}

	if !strings.Contains(messages[1].Content, "first_name=Ami") {
		t.Errorf("profile block missing name: %q", messages[1].Content)
	}
	if !strings.Contains(messages[1].Content, "Assigned counselor: Dr. Rhee (rhee@example.com)") {
		t.Errorf("profile block missing counselor: %q", messages[1].Content)
	}

	refs := messages[2].Content
	if !strings.HasPrefix(refs, "References:\n") {
		t.Errorf("references block has wrong prefix: %q", refs)
	}
	if !strings.Contains(refs, "slide one text\n\n---\n\nslide two text") {
		t.Errorf("passages not joined with separator: %q", refs)
	}

	if messages[3].Role != "user" {
		t.Errorf("user turn must come last, got role %q", messages[3].Role)
	}
}

func TestComposeProfileWithoutCounselor(t *testing.T) {
	profile := &Profile{FirstName: "Bo", LastName: "Li", AgeGroup: "26-35"}

	messages := Compose(profile, nil, "hello")

	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(messages))
	}
	if strings.Contains(messages[1].Content, "Assigned counselor") {
		t.Errorf("counselor fragment must be omitted when unassigned: %q", messages[1].Content)
	}
}
