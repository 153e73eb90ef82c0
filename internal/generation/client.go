// Package generation builds prompts and invokes the external completion
// service to produce cover letters.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator is an abstraction over the completion provider.
type Generator interface {
	// Generate produces a cover letter from a resume and job description.
	// It makes exactly one completion call; failures are returned as typed
	// errors from the taxonomy in errors.go and are never retried here.
	Generate(ctx context.Context, resumeText, jobDesc string) (string, error)
	// Close releases any resources held by the generator.
	Close() error
}

// Options configures the completion call. Model and output cap are fixed
// configuration, not per-call inputs.
type Options struct {
	Model           string
	MaxOutputTokens int
	Temperature     float32
}

// DefaultOptions returns the standard generation options.
func DefaultOptions() Options {
	return Options{
		Model:           "gemini-2.5-flash",
		MaxOutputTokens: 1000,
		Temperature:     0.7,
	}
}

// GeminiGenerator implements Generator for Google Gemini.
type GeminiGenerator struct {
	client *genai.Client
	opts   Options
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey string, opts Options) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, &AuthError{Cause: fmt.Errorf("API key is required")}
	}
	if opts.Model == "" {
		opts = DefaultOptions()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, opts: opts}, nil
}

// Generate produces a cover letter with one completion call.
func (g *GeminiGenerator) Generate(ctx context.Context, resumeText, jobDesc string) (string, error) {
	model := g.client.GenerativeModel(g.opts.Model)
	model.SetTemperature(g.opts.Temperature)
	model.SetMaxOutputTokens(int32(g.opts.MaxOutputTokens))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	prompt := BuildPrompt(resumeText, jobDesc)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyError(err)
	}

	letter, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	return letter, nil
}

// Close releases resources held by the generator.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts the letter text from a Gemini response.
// A structurally valid response with no usable text is an empty-response
// failure, not a service error.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &EmptyResponseError{}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &EmptyResponseError{}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	letter := strings.TrimSpace(strings.Join(parts, ""))
	if letter == "" {
		return "", &EmptyResponseError{}
	}

	return letter, nil
}
