package inference

import (
	"context"
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"surrounded by prose", `Sure! Here you go: {"a": 1} Hope that helps.`, `{"a": 1}`},
		{"nested objects", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`},
		{"brace inside string", `{"a": "}"}`, `{"a": "}"}`},
		{"escaped quote inside string", `{"a": "say \"hi\""}`, `{"a": "say \"hi\""}`},
		{"no object", `no json here`, ""},
		{"unclosed object", `{"a": 1`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildExplainPrompt(t *testing.T) {
	prompt := buildExplainPrompt("1+1=?", "3", "2")

	for _, want := range []string{"1+1=?", "STUDENT'S ANSWER", "CORRECT ANSWER"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Optional answers are omitted entirely when absent.
	prompt = buildExplainPrompt("1+1=?", "", "")
	if strings.Contains(prompt, "STUDENT'S ANSWER") || strings.Contains(prompt, "CORRECT ANSWER") {
		t.Error("prompt should omit empty answer sections")
	}
}

func TestMock_Deterministic(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	t1, err := m.Recognize(ctx, []byte("img"), "image/png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t2, _ := m.Recognize(ctx, []byte("other img"), "image/jpeg")
	if t1 != t2 {
		t.Error("expected identical transcriptions from the mock")
	}
	if t1 == "" {
		t.Error("expected non-empty transcription")
	}

	e1, err := m.Explain(ctx, "1+1=?", "3", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e2, _ := m.Explain(ctx, "2+2=?", "", "")
	if e1 != e2 {
		t.Error("expected identical explanations from the mock")
	}
}

func TestMock_AnalyzeEmptyCollection(t *testing.T) {
	m := NewMock()

	a, err := m.AnalyzeMistakes(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.WeakTopics) != 0 || len(a.Suggestions) != 0 {
		t.Errorf("expected empty analysis, got %+v", a)
	}
}
