package describe

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"auction-house/internal/auctionerrors"
)

// FallbackDescription is returned to the user whenever generation fails;
// the caller lets them write their own text instead.
const FallbackDescription = "Houve um erro ao gerar a descrição. Por favor, tente novamente ou escreva a sua própria."

const (
	defaultModel   = "gemini-2.5-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Generator drafts a listing description from a title and an image.
type Generator interface {
	Generate(ctx context.Context, title string, imageData []byte, mimeType string) (string, error)
}

// GeminiGenerator calls the Gemini generateContent REST endpoint.
type GeminiGenerator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGeminiGenerator creates a generator using the given API key.
func NewGeminiGenerator(apiKey string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewGeminiGeneratorWithBaseURL is used by tests to point at a fake server.
func NewGeminiGeneratorWithBaseURL(apiKey, baseURL string) *GeminiGenerator {
	g := NewGeminiGenerator(apiKey)
	g.baseURL = baseURL
	return g
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate drafts an auction description for the titled item. Any
// transport or API failure is reported as ErrExternalService; callers fall
// back to FallbackDescription.
func (g *GeminiGenerator) Generate(ctx context.Context, title string, imageData []byte, mimeType string) (string, error) {
	prompt := fmt.Sprintf(
		"Você é um leiloeiro especialista e redator. Baseado no título do item %q e na imagem fornecida, "+
			"escreva uma descrição de leilão atraente e detalhada. A descrição deve ser sedutora para potenciais "+
			"licitantes, destacar características chave e criar uma sensação de valor e raridade. "+
			"Não mencione preço ou lances. Formate a saída como um único parágrafo de texto em português.",
		title,
	)

	body := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(imageData)}},
				{Text: prompt},
			},
		}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("describe: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("describe: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("describe: %v: %w", err, auctionerrors.ErrExternalService)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("describe: unexpected status %d: %w", resp.StatusCode, auctionerrors.ErrExternalService)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("describe: read response: %w", auctionerrors.ErrExternalService)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("describe: decode response: %w", auctionerrors.ErrExternalService)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("describe: empty response: %w", auctionerrors.ErrExternalService)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
