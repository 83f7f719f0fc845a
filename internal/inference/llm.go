package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mistakebook/backend/internal/domain/question"
)

// LLM implements Service by calling an OpenAI-compatible endpoint
// (Ollama, LM Studio, vLLM, hosted APIs).
type LLM struct {
	url    string       // e.g. "http://localhost:1234"
	model  string       // e.g. "qwen3-8b"
	client *http.Client // reused across calls
}

// Compile-time check: *LLM satisfies the Service interface.
var _ Service = (*LLM)(nil)

// InferenceError is returned when a call fails so the caller can tell
// "model produced unusable output" apart from "endpoint was unreachable."
type InferenceError struct {
	Reason  string
	Wrapped error
}

func (e *InferenceError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("inference failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("inference failed: %s", e.Reason)
}

func (e *InferenceError) Unwrap() error {
	return e.Wrapped
}

// NewLLM creates a service that calls the given endpoint.
func NewLLM(url, model string) *LLM {
	return &LLM{
		url:   url,
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

const maxRetries = 2

// ============================================================================
// Service interface
// ============================================================================

// Recognize sends the image as a data URI to a vision-capable model and
// returns the transcribed problem statement.
func (l *LLM) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	content := []contentPart{
		{Type: "text", Text: "Transcribe the homework question in this photo. Return only the question text, nothing else."},
		{Type: "image_url", ImageURL: &imageURL{URL: dataURI}},
	}

	result, err := l.call(ctx, content)
	if err != nil {
		return "", &InferenceError{Reason: "recognition call failed", Wrapped: err}
	}

	text := strings.TrimSpace(result)
	if text == "" {
		return "", &InferenceError{Reason: "model returned empty transcription"}
	}
	return text, nil
}

func (l *LLM) Explain(ctx context.Context, questionText, userAnswer, correctAnswer string) (string, error) {
	result, err := l.call(ctx, buildExplainPrompt(questionText, userAnswer, correctAnswer))
	if err != nil {
		return "", &InferenceError{Reason: "explanation call failed", Wrapped: err}
	}

	text := strings.TrimSpace(result)
	if text == "" {
		return "", &InferenceError{Reason: "model returned empty explanation"}
	}
	return text, nil
}

// GeneratePractice asks the model for a JSON object and retries once on
// parse failure (small models sometimes need a second try).
func (l *LLM) GeneratePractice(ctx context.Context, subject, difficulty, topic string) (PracticeQuestion, error) {
	prompt := buildPracticePrompt(subject, difficulty, topic)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		result, err := l.call(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		jsonStr := extractJSON(result)
		if jsonStr == "" {
			lastErr = &InferenceError{Reason: "no JSON object found in model response"}
			continue
		}

		var pq PracticeQuestion
		if err := json.Unmarshal([]byte(jsonStr), &pq); err != nil {
			lastErr = &InferenceError{Reason: "invalid JSON from model", Wrapped: err}
			continue
		}
		if pq.Question == "" || pq.Answer == "" {
			lastErr = &InferenceError{Reason: "model returned incomplete practice question"}
			continue
		}
		return pq, nil
	}

	return PracticeQuestion{}, &InferenceError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

func (l *LLM) AnalyzeMistakes(ctx context.Context, questions []*question.Question) (Analysis, error) {
	if len(questions) == 0 {
		return Analysis{WeakTopics: []string{}, Suggestions: []string{}}, nil
	}

	prompt := buildAnalysisPrompt(questions)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		result, err := l.call(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		jsonStr := extractJSON(result)
		if jsonStr == "" {
			lastErr = &InferenceError{Reason: "no JSON object found in model response"}
			continue
		}

		var a Analysis
		if err := json.Unmarshal([]byte(jsonStr), &a); err != nil {
			lastErr = &InferenceError{Reason: "invalid JSON from model", Wrapped: err}
			continue
		}
		if a.WeakTopics == nil {
			a.WeakTopics = []string{}
		}
		if a.Suggestions == nil {
			a.Suggestions = []string{}
		}
		return a, nil
	}

	return Analysis{}, &InferenceError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// ============================================================================
// Endpoint communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"` // string, or []contentPart for vision
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// call sends a single chat-completion request and returns the raw text.
func (l *LLM) call(ctx context.Context, content any) (string, error) {
	reqBody := llmRequest{
		Model: l.model,
		Messages: []llmMessage{
			{Role: "user", Content: content},
		},
		Temperature: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	text := llmResp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("model returned empty content")
	}

	return text, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the outermost JSON object in a string.
// It handles nested braces correctly and skips braces inside quoted strings.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ============================================================================
// Prompt builders — kept short and directive for small (4-8B) models.
// Always end with the output format so it's the last thing the model sees.
// ============================================================================

func buildExplainPrompt(questionText, userAnswer, correctAnswer string) string {
	var b strings.Builder
	b.WriteString(`You are tutoring a primary-school student. Explain the problem below:
1. Use simple language a child can follow.
2. Walk through the solution step by step.
3. Point out the common mistakes for this kind of problem.
4. Suggest how to practice similar problems.

PROBLEM:
`)
	b.WriteString(questionText)
	if userAnswer != "" {
		b.WriteString("\n\nSTUDENT'S ANSWER:\n" + userAnswer)
	}
	if correctAnswer != "" {
		b.WriteString("\n\nCORRECT ANSWER:\n" + correctAnswer)
	}
	b.WriteString("\n\nRespond with the explanation only, no preamble.")
	return b.String()
}

func buildPracticePrompt(subject, difficulty, topic string) string {
	constraint := fmt.Sprintf("SUBJECT: %s\nDIFFICULTY: %s", subject, difficulty)
	if topic != "" {
		constraint += "\nTOPIC: " + topic
	}

	return fmt.Sprintf(`Write one practice problem for a primary-school student.

%s

Respond with ONLY this JSON, no explanation, no markdown:
{"question": "...", "answer": "...", "explanation": "..."}`, constraint)
}

func buildAnalysisPrompt(questions []*question.Question) string {
	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, q.Subject, q.QuestionText)
	}

	return fmt.Sprintf(`A primary-school student got the problems below wrong.
Identify the weak topics and give short, practical study suggestions.

MISTAKES:
%s
Respond with ONLY this JSON, no explanation, no markdown:
{"weakTopics": ["topic", ...], "suggestions": ["suggestion", ...]}`, b.String())
}
