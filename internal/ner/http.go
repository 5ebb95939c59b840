package ner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/joseph-ayodele/docintel/internal/common"
)

// HTTPRecognizer calls a recognition sidecar: POST {"text": ...} to the
// configured URL, expecting {"entities": [{"text","label"}, ...]}.
type HTTPRecognizer struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewHTTPRecognizer(url string, timeout time.Duration, logger *slog.Logger) *HTTPRecognizer {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPRecognizer{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (r *HTTPRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	raw, _, err := common.SendJSON(ctx, r.client, r.url, map[string]string{"text": text}, nil, r.logger)
	if err != nil {
		return nil, common.WrapError(err, "ner request")
	}
	if err := validateResponse(raw); err != nil {
		r.logger.Warn("ner.response.invalid", "error", err)
		return nil, common.WrapError(err, "ner response")
	}

	var resp struct {
		Entities []Entity `json:"entities"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode ner response: %w", err)
	}

	r.logger.Debug("ner.recognize.ok", "entities", len(resp.Entities), "text_bytes", len(text))
	return resp.Entities, nil
}
