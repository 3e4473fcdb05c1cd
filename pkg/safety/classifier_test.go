package safety

import (
	"context"
	"errors"
	"testing"

	"medisos-be/pkg/llm"
)

// fakeProvider returns a scripted reply or error and records calls.
type fakeProvider struct {
	reply string
	err   error
	calls int
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestMatchesUrgentPhrase(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"I want to die", true},
		{"i WANT to DIE", true},
		{"thinking about suicide lately", true},
		{"I might hurt myself", true},
		{"I had a rough day at work", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := MatchesUrgentPhrase(tt.text); got != tt.want {
			t.Errorf("MatchesUrgentPhrase(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestClassifyKeywordShortCircuit(t *testing.T) {
	provider := &fakeProvider{reply: `{"risk_score":0,"label":"low","reason":"x"}`}
	c := NewClassifier(provider)

	verdict := c.Classify(context.Background(), "I want to die")

	if verdict.Score != 100 {
		t.Errorf("score = %d, want 100", verdict.Score)
	}
	if verdict.Source != SourceKeyword {
		t.Errorf("source = %q, want %q", verdict.Source, SourceKeyword)
	}
	if !verdict.Emergency() {
		t.Error("keyword verdict should be an emergency")
	}
	if provider.calls != 0 {
		t.Errorf("model called %d times, keyword stage must bypass it", provider.calls)
	}
}

func TestClassifyModelStage(t *testing.T) {
	provider := &fakeProvider{reply: `Here is my assessment: {"risk_score":45,"label":"medium","reason":"signs of distress"} `}
	c := NewClassifier(provider)

	verdict := c.Classify(context.Background(), "everything feels heavy lately")

	if verdict.Score != 45 {
		t.Errorf("score = %d, want 45", verdict.Score)
	}
	if verdict.Label != "medium" {
		t.Errorf("label = %q, want medium", verdict.Label)
	}
	if verdict.Source != SourceModel {
		t.Errorf("source = %q, want %q", verdict.Source, SourceModel)
	}
	if verdict.Emergency() {
		t.Error("score 45 should not be an emergency")
	}
}

func TestClassifyFallbackOnProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	c := NewClassifier(provider)

	verdict := c.Classify(context.Background(), "some ordinary message")

	if verdict.Score != 0 || verdict.Label != "low" || verdict.Source != SourceFallback {
		t.Errorf("want explicit low-risk fallback verdict, got %+v", verdict)
	}
}

func TestClassifyFallbackOnUnparsableReply(t *testing.T) {
	provider := &fakeProvider{reply: "I cannot produce JSON today"}
	c := NewClassifier(provider)

	verdict := c.Classify(context.Background(), "some ordinary message")

	if verdict.Source != SourceFallback {
		t.Errorf("source = %q, want %q", verdict.Source, SourceFallback)
	}
}

func TestClassifyCachesModelVerdicts(t *testing.T) {
	provider := &fakeProvider{reply: `{"risk_score":10,"label":"low","reason":"fine"}`}
	c := NewClassifier(provider)

	first := c.Classify(context.Background(), "repeated message")
	second := c.Classify(context.Background(), "repeated message")

	if provider.calls != 1 {
		t.Errorf("model called %d times, want 1 (second call cached)", provider.calls)
	}
	if first != second {
		t.Errorf("cached verdict differs: %+v vs %+v", first, second)
	}
}
