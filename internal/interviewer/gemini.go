package interviewer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/godilite/interview-coach/internal/chat"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiModel implements Model for Google Gemini.
type GeminiModel struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiModel(ctx context.Context, apiKey, modelName string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiModel{
		client:      client,
		modelName:   modelName,
		temperature: 0.7,
	}, nil
}

// Complete sends history as a Gemini chat session and returns the reply to
// its last user message.
func (m *GeminiModel) Complete(ctx context.Context, history []chat.Message) (string, error) {
	system, contents := toGeminiContents(history)
	if len(contents) == 0 || contents[len(contents)-1].Role != "user" {
		return "", fmt.Errorf("conversation must end with a user message")
	}

	model := m.client.GenerativeModel(m.modelName)
	model.SetTemperature(m.temperature)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	session := model.StartChat()
	session.History = contents[:len(contents)-1]

	resp, err := session.SendMessage(ctx, contents[len(contents)-1].Parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(resp)
}

// Close releases resources held by the client
func (m *GeminiModel) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

// toGeminiContents splits out system messages and merges consecutive turns
// of the same role, which Gemini rejects.
func toGeminiContents(history []chat.Message) (string, []*genai.Content) {
	var (
		system   []string
		contents []*genai.Content
	)
	for _, msg := range history {
		role := "user"
		switch msg.Role {
		case chat.RoleSystem:
			system = append(system, msg.Content)
			continue
		case chat.RoleAssistant:
			role = "model"
		}

		if n := len(contents); n > 0 && contents[n-1].Role == role {
			contents[n-1].Parts = append(contents[n-1].Parts, genai.Text(msg.Content))
			continue
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(msg.Content)}})
	}
	return strings.Join(system, "\n\n"), contents
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.TrimSpace(strings.Join(parts, "")), nil
}
