// Package safety scores inbound messages for self-harm risk. Classification
// is two-stage: a deterministic keyword matcher, then an LLM-based numeric
// classifier. A failing model stage falls open toward low risk with an
// explicit fallback marker; it never fails the chat turn.
package safety

import (
	"context"
	"fmt"
	"time"

	"medisos-be/pkg/llm"
	"medisos-be/pkg/textjson"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// EmergencyThreshold is the verdict score at which the orchestrator takes
	// the emergency branch, regardless of verdict source.
	EmergencyThreshold = 70

	SourceKeyword  = "keyword"
	SourceModel    = "model"
	SourceFallback = "fallback"

	classifierSystemPrompt = `You are a safety classifier. Given a user message return ONLY JSON: {"risk_score":int,"label":"low|medium|high","reason":"short"}`
)

// Verdict is a structured safety assessment.
type Verdict struct {
	Score  int    `json:"risk_score"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
	Source string `json:"source"`
}

// Emergency reports whether the verdict crosses the escalation threshold.
func (v Verdict) Emergency() bool {
	return v.Score >= EmergencyThreshold
}

type Classifier struct {
	provider llm.Provider
	cache    *gocache.Cache
}

func NewClassifier(provider llm.Provider) *Classifier {
	return &Classifier{
		provider: provider,
		// Identical messages within a short window get the same verdict
		// without another model round trip.
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Classify runs both stages and always returns a usable verdict.
func (c *Classifier) Classify(ctx context.Context, text string) Verdict {
	if MatchesUrgentPhrase(text) {
		return Verdict{Score: 100, Label: "high", Reason: "urgent phrase match", Source: SourceKeyword}
	}
	return c.classifyWithModel(ctx, text)
}

func (c *Classifier) classifyWithModel(ctx context.Context, text string) Verdict {
	if cached, found := c.cache.Get(text); found {
		return cached.(Verdict)
	}

	fallback := Verdict{Score: 0, Label: "low", Reason: "fallback", Source: SourceFallback}

	reply, err := c.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: classifierSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Classify:\n\"\"\"\n%s\n\"\"\"", text)},
		},
		llm.WithTemperature(0.0),
		llm.WithMaxTokens(80),
	)
	if err != nil {
		return fallback
	}

	data, ok := textjson.ExtractSpan(reply)
	if !ok {
		return fallback
	}

	verdict := Verdict{
		Score:  textjson.Number(data, "risk_score", 0),
		Label:  textjson.String(data, "label", "low"),
		Reason: textjson.String(data, "reason", ""),
		Source: SourceModel,
	}
	c.cache.Set(text, verdict, gocache.DefaultExpiration)
	return verdict
}
