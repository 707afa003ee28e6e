package scan

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alexshipulin/Buddy/internal/llm"
)

var imageHTTP = &http.Client{Timeout: 30 * time.Second}

// encodeImage converts an image reference into transport-safe inline
// data. Accepts data URIs, http(s) URLs, and raw base64 payloads.
func encodeImage(ctx context.Context, ref string) (*llm.InlineImage, error) {
	if ref == "" {
		return nil, errors.New("empty image reference")
	}

	if strings.HasPrefix(ref, "data:") {
		return decodeDataURI(ref)
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return fetchImage(ctx, ref)
	}

	// Already base64-encoded image data.
	return &llm.InlineImage{MIMEType: "image/jpeg", Data: ref}, nil
}

func decodeDataURI(uri string) (*llm.InlineImage, error) {
	rest := strings.TrimPrefix(uri, "data:")
	meta, data, ok := strings.Cut(rest, ",")
	if !ok || data == "" {
		return nil, errors.New("malformed data URI")
	}

	mimeType := "image/jpeg"
	if m, _, found := strings.Cut(meta, ";"); found && m != "" {
		mimeType = m
	} else if meta != "" && !strings.Contains(meta, "base64") {
		mimeType = meta
	}

	return &llm.InlineImage{MIMEType: mimeType, Data: data}, nil
}

func fetchImage(ctx context.Context, url string) (*llm.InlineImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := imageHTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errors.New("empty image body")
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(body)
	}

	return &llm.InlineImage{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(body),
	}, nil
}
