package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
)

// LLMGenerator produces questions by calling an OpenAI-compatible chat
// endpoint (Hugging Face Inference, Ollama, LM Studio, vLLM, etc.).
type LLMGenerator struct {
	url    string       // e.g. "https://router.huggingface.co"
	model  string       // e.g. "meta-llama/Meta-Llama-3-8B-Instruct"
	token  string       // bearer token, empty for local endpoints
	client *http.Client // reused across calls
}

// Compile-time check: *LLMGenerator satisfies the Generator interface.
var _ Generator = (*LLMGenerator)(nil)

// NewLLMGenerator creates a generator backed by the given endpoint.
func NewLLMGenerator(url, model, token string) *LLMGenerator {
	return &LLMGenerator{
		url:   strings.TrimSuffix(url, "/"),
		model: model,
		token: token,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

const maxRetries = 2

// GenerateQuestions asks the model for MCQ records and parses its JSON
// reply. It retries once on parse failure (small models sometimes need
// a second try).
func (g *LLMGenerator) GenerateQuestions(ctx context.Context, material string, count int) ([]question.Question, error) {
	if strings.TrimSpace(material) == "" {
		return nil, nil
	}
	prompt := buildQuestionPrompt(material, count)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := g.callLLM(ctx, questionSystemPrompt, prompt, 0.7)
		if err != nil {
			lastErr = err
			continue
		}

		questions, err := ParseQuestions(raw)
		if err != nil {
			lastErr = err
			continue
		}
		if len(questions) > count {
			questions = questions[:count]
		}
		return questions, nil
	}

	return nil, &GenerateError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// ClassifyDifficulty asks the model for a one-word difficulty label.
// Anything that is not clearly easy or hard becomes medium, matching
// the neutral default used everywhere else.
func (g *LLMGenerator) ClassifyDifficulty(ctx context.Context, questionText string) (question.Difficulty, error) {
	prompt := buildClassifyPrompt(questionText)

	raw, err := g.callLLM(ctx, classifySystemPrompt, prompt, 0)
	if err != nil {
		return question.Medium, err
	}

	label := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(label, "easy"):
		return question.Easy, nil
	case strings.Contains(label, "hard"):
		return question.Hard, nil
	default:
		return question.Medium, nil
	}
}

// ParseQuestions extracts the JSON payload from a raw model reply and
// maps it onto Question records. Records missing a required field are
// dropped; a single JSON object is tolerated as a one-element list.
func ParseQuestions(raw string) ([]question.Question, error) {
	jsonStr := extractJSONArray(raw)
	if jsonStr == "" {
		return nil, &GenerateError{Reason: "no JSON payload found in LLM response"}
	}

	var items []rawQuestion
	if strings.HasPrefix(jsonStr, "{") {
		var single rawQuestion
		if err := json.Unmarshal([]byte(jsonStr), &single); err != nil {
			return nil, &GenerateError{Reason: "invalid JSON from LLM", Wrapped: err}
		}
		items = []rawQuestion{single}
	} else if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
		return nil, &GenerateError{Reason: "invalid JSON from LLM", Wrapped: err}
	}

	var questions []question.Question
	for _, item := range items {
		if item.Question == "" || item.Answer == "" || len(item.Distractors) == 0 {
			continue
		}
		questions = append(questions, question.Question{
			Text:        item.Question,
			Answer:      item.Answer,
			Distractors: item.Distractors,
			Difficulty:  question.ParseDifficulty(item.Difficulty),
			Topic:       item.Topic,
			Kind:        question.Kind(item.Type),
		})
	}

	if len(questions) == 0 {
		return nil, &GenerateError{Reason: "LLM response contained no usable questions"}
	}
	return questions, nil
}

type rawQuestion struct {
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Distractors []string `json:"distractors"`
	Difficulty  string   `json:"difficulty"`
	Topic       string   `json:"topic"`
	Type        string   `json:"type"`
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single chat request and returns the raw text reply.
func (g *LLMGenerator) callLLM(ctx context.Context, system, prompt string, temperature float64) (string, error) {
	reqBody := llmRequest{
		Model: g.model,
		Messages: []llmMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSONArray finds the outermost JSON array in a string, falling
// back to the outermost object when no array is present. Brackets
// inside quoted strings are skipped.
func extractJSONArray(s string) string {
	if payload := extractDelimited(s, '[', ']'); payload != "" {
		return payload
	}
	return extractDelimited(s, '{', '}')
}

func extractDelimited(s string, open, closing rune) string {
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

		if ch == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == closing {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
