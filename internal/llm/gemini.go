package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultModel = "gemini-2.5-flash"

type GeminiClient struct {
	apiKey string
	model  string
	apiURL string
	http   *http.Client
}

func NewGeminiClient() *GeminiClient {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	apiURL := os.Getenv("GEMINI_API_URL")
	if apiURL == "" {
		apiURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	return &GeminiClient{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
		apiURL: apiURL,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// HasAPIKey reports whether a usable Gemini credential is configured.
// The placeholder from the sample .env counts as missing.
func HasAPIKey() bool {
	key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	return key != "" && key != "your_key_here"
}

// Generate sends one generateContent request and returns the
// concatenated candidate text.
func (g *GeminiClient) Generate(
	ctx context.Context,
	prompt string,
	image *InlineImage,
	cfg *GenerationConfig,
) (string, error) {

	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	parts := []map[string]any{
		{"text": prompt},
	}
	if image != nil {
		parts = append(parts, map[string]any{
			"inlineData": map[string]string{
				"mimeType": image.MIMEType,
				"data":     image.Data,
			},
		})
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
	}
	if cfg != nil {
		payload["generationConfig"] = cfg
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		g.apiURL,
		g.model,
		g.apiKey,
	)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error %d: %s", resp.StatusCode, string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 {
		return "", errors.New("empty gemini response")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	output := sb.String()
	if output == "" {
		return "", errors.New("empty gemini response")
	}

	return output, nil
}
