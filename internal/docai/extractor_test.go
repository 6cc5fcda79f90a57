package docai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/claims"
	"github.com/jonathan/internship-matcher/internal/types"
)

func TestStripFences_JSONFence(t *testing.T) {
	assert.Equal(t, `{"kind": "id"}`, stripFences("```json\n{\"kind\": \"id\"}\n```"))
}

func TestStripFences_BareFence(t *testing.T) {
	assert.Equal(t, `{"kind": "income"}`, stripFences("```\n{\"kind\": \"income\"}\n```"))
}

func TestStripFences_UnfencedPassthrough(t *testing.T) {
	assert.Equal(t, `{"kind": "resume"}`, stripFences("  {\"kind\": \"resume\"}\n"))
}

func TestDecodeExtraction_ValidPayload(t *testing.T) {
	payload := `{"kind": "income", "fields": {"annual_income": 475000}}`

	raw, err := decodeExtraction(types.DocumentIncome, payload)
	require.NoError(t, err)

	assert.Equal(t, "income", raw.Kind)
	assert.Equal(t, float64(475000), raw.Fields["annual_income"])
}

func TestDecodeExtraction_FillsMissingKind(t *testing.T) {
	payload := `{"fields": {"age": 22}}`

	raw, err := decodeExtraction(types.DocumentID, payload)
	require.NoError(t, err)

	assert.Equal(t, "id", raw.Kind)
}

func TestDecodeExtraction_InvalidJSON(t *testing.T) {
	_, err := decodeExtraction(types.DocumentResume, "the resume lists Python and SQL")

	var parseErr *claims.DocumentParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "resume", parseErr.Kind)
}

func TestExtractionPrompt_MentionsDocumentKindAndText(t *testing.T) {
	prompt := extractionPrompt(Document{Kind: types.DocumentIncome, Text: "Annual income: 4,75,000"})

	assert.Contains(t, prompt, "income document")
	assert.Contains(t, prompt, "Annual income: 4,75,000")
}

// failingAnalyzer fails for a chosen document kind and succeeds otherwise.
type failingAnalyzer struct {
	failKind types.DocumentKind
}

func (a *failingAnalyzer) Analyze(_ context.Context, doc Document) (claims.RawExtraction, error) {
	if doc.Kind == a.failKind {
		return claims.RawExtraction{}, &ServiceUnavailableError{
			Message: "backend down",
			Cause:   errors.New("connection refused"),
		}
	}
	return claims.RawExtraction{Kind: string(doc.Kind), Fields: map[string]any{}}, nil
}

func (a *failingAnalyzer) Close() error { return nil }

func TestAnalyzeAll_FailedDocumentSkipped(t *testing.T) {
	docs := []Document{
		{Kind: types.DocumentID, Text: "aadhaar"},
		{Kind: types.DocumentIncome, Text: "certificate"},
		{Kind: types.DocumentResume, Text: "resume"},
	}

	raws, errs := AnalyzeAll(context.Background(), &failingAnalyzer{failKind: types.DocumentIncome}, docs)

	assert.Len(t, raws, 2)
	require.Len(t, errs, 1)

	var svcErr *ServiceUnavailableError
	assert.ErrorAs(t, errs[0], &svcErr)
}

func TestNewGeminiAnalyzer_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiAnalyzer(context.Background(), "", "")

	assert.Error(t, err)
}
