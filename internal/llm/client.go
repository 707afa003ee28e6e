package llm

import (
	"context"
	"encoding/json"
)

// InlineImage is base64 image data sent alongside a prompt.
type InlineImage struct {
	MIMEType string
	Data     string
}

// GenerationConfig mirrors the Gemini generationConfig wire object.
type GenerationConfig struct {
	ResponseMIMEType   string          `json:"response_mime_type,omitempty"`
	ResponseJSONSchema json.RawMessage `json:"response_json_schema,omitempty"`
	Temperature        float64         `json:"temperature"`
	MaxOutputTokens    int             `json:"maxOutputTokens,omitempty"`
}

type Client interface {
	Generate(ctx context.Context, prompt string, image *InlineImage, cfg *GenerationConfig) (string, error)
}
