// Package docai implements the document analysis collaborator: it extracts
// structured claims from supporting-document text using Gemini. The engine
// core never depends on it; it is one injectable Analyzer implementation.
package docai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/internship-matcher/internal/claims"
	"github.com/jonathan/internship-matcher/internal/types"
)

// DefaultModel is the Gemini model used for claim extraction.
const DefaultModel = "gemini-2.0-flash"

// Document is one supporting document with pre-extracted text. OCR and image
// handling happen upstream; the analyzer only sees text.
type Document struct {
	Kind types.DocumentKind
	Text string
}

// Analyzer extracts a raw claim payload from one document.
type Analyzer interface {
	Analyze(ctx context.Context, doc Document) (claims.RawExtraction, error)
	Close() error
}

// GeminiAnalyzer implements Analyzer on top of the Gemini API.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnalyzer creates a Gemini-backed analyzer.
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAnalyzer{client: client, model: model}, nil
}

// Analyze prompts the model for a strict-JSON extraction of the document and
// returns the raw payload for the claim normalizer. Transport failures map to
// ServiceUnavailableError; unparseable model output maps to the normalizer's
// DocumentParseError so callers treat the claim as absent.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, doc Document) (claims.RawExtraction, error) {
	model := a.client.GenerativeModel(a.model)
	model.SetTemperature(0.0) // Extraction must be reproducible, not creative.

	resp, err := model.GenerateContent(ctx, genai.Text(extractionPrompt(doc)))
	if err != nil {
		return claims.RawExtraction{}, &ServiceUnavailableError{
			Message: fmt.Sprintf("extraction call for %s document failed", doc.Kind),
			Cause:   err,
		}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return claims.RawExtraction{}, &ServiceUnavailableError{
			Message: fmt.Sprintf("empty extraction response for %s document", doc.Kind),
			Cause:   err,
		}
	}

	return decodeExtraction(doc.Kind, stripFences(text))
}

// Close releases the underlying client.
func (a *GeminiAnalyzer) Close() error {
	return a.client.Close()
}

// extractTextFromResponse extracts the text content from a Gemini response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content parts in response")
	}

	var result string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			result += string(text)
		}
	}

	if result == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return result, nil
}
