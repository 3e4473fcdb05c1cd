package textjson

import (
	"testing"
)

func TestExtractTrailing(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantText string
		wantKeys map[string]interface{}
	}{
		{
			name:     "prose with trailing object",
			text:     "hello {\"risk_score\":5}",
			wantText: "hello",
			wantKeys: map[string]interface{}{"risk_score": float64(5)},
		},
		{
			name:     "no braces at all",
			text:     "just a plain reply",
			wantText: "just a plain reply",
			wantKeys: map[string]interface{}{},
		},
		{
			name:     "malformed trailing object",
			text:     "reply text {risk_score: 5",
			wantText: "reply text {risk_score: 5",
			wantKeys: map[string]interface{}{},
		},
		{
			name:     "only a JSON object",
			text:     "{\"emotion\":\"calm\",\"risk_score\":10}",
			wantText: "",
			wantKeys: map[string]interface{}{"emotion": "calm", "risk_score": float64(10)},
		},
		{
			name:     "nested braces in prose keep last object",
			text:     "set {a} first {\"confidence\":0.9}",
			wantText: "set {a} first",
			wantKeys: map[string]interface{}{"confidence": 0.9},
		},
		{
			name:     "surrounding whitespace trimmed",
			text:     "  hi there  {\"risk_score\":1} ",
			wantText: "hi there",
			wantKeys: map[string]interface{}{"risk_score": float64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotData := ExtractTrailing(tt.text)

			if gotText != tt.wantText {
				t.Errorf("text = %q, want %q", gotText, tt.wantText)
			}
			if len(gotData) != len(tt.wantKeys) {
				t.Fatalf("metadata = %v, want %v", gotData, tt.wantKeys)
			}
			for k, want := range tt.wantKeys {
				if gotData[k] != want {
					t.Errorf("metadata[%q] = %v, want %v", k, gotData[k], want)
				}
			}
		})
	}
}

func TestExtractSpan(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantOK bool
	}{
		{"clean object", `{"risk_score":40,"label":"medium","reason":"distress"}`, true},
		{"object wrapped in prose", `Sure, here you go: {"risk_score":12,"label":"low","reason":"ok"} hope that helps`, true},
		{"no braces", "cannot classify", false},
		{"braces out of order", "} nope {", false},
		{"unparsable span", "{not json}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ok := ExtractSpan(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (data=%v)", ok, tt.wantOK, data)
			}
			if ok && data == nil {
				t.Error("expected non-nil data on success")
			}
		})
	}
}

func TestNumberAndString(t *testing.T) {
	data := map[string]interface{}{
		"risk_score": float64(42),
		"label":      "medium",
		"weird":      []interface{}{1, 2},
	}

	if got := Number(data, "risk_score", 0); got != 42 {
		t.Errorf("Number(risk_score) = %d, want 42", got)
	}
	if got := Number(data, "missing", 7); got != 7 {
		t.Errorf("Number(missing) = %d, want fallback 7", got)
	}
	if got := Number(data, "weird", 3); got != 3 {
		t.Errorf("Number(weird) = %d, want fallback 3", got)
	}
	if got := String(data, "label", "low"); got != "medium" {
		t.Errorf("String(label) = %q, want medium", got)
	}
	if got := String(data, "missing", "low"); got != "low" {
		t.Errorf("String(missing) = %q, want fallback low", got)
	}
}
