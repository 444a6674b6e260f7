package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

type GeminiService interface {
	StructureCV(ctx context.Context, apiKey, cvText string) (string, error)
	GenerateCoverLetter(ctx context.Context, apiKey, structuredCvData, jobDescription string) (string, error)
}

type geminiService struct {
	modelName     string
	temperature   float32
	promptBuilder *PromptBuilder
}

func NewGeminiService(modelName string, temperature float32) GeminiService {
	return &geminiService{
		modelName:     modelName,
		temperature:   temperature,
		promptBuilder: NewPromptBuilder(),
	}
}

// StructureCV implements GeminiService.
func (g *geminiService) StructureCV(ctx context.Context, apiKey, cvText string) (string, error) {
	prompt := g.promptBuilder.BuildStructuringPrompt(CleanText(cvText))

	result, err := g.generate(ctx, apiKey, prompt)
	if err != nil {
		return "", err
	}

	return stripCodeFences(result), nil
}

// GenerateCoverLetter implements GeminiService.
func (g *geminiService) GenerateCoverLetter(ctx context.Context, apiKey, structuredCvData, jobDescription string) (string, error) {
	prompt := g.promptBuilder.BuildCoverLetterPrompt(structuredCvData, jobDescription)

	result, err := g.generate(ctx, apiKey, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// generate runs one completion. The client is built per call because the API
// key belongs to the caller, not to the server.
func (g *geminiService) generate(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("❌ Failed to create Gemini client: %v\n", err)
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     &g.temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)

		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 {
			return "", fmt.Errorf("%w: %v", ErrUpstreamRejected, err)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if resp == nil {
		return "", ErrEmptyCompletion
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}

// stripCodeFences removes the ```json ... ``` wrapper Gemini sometimes puts
// around a JSON answer.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	} else {
		return text
	}

	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
