package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/joseph-ayodele/docintel/internal/common"
)

// HTTPClassifier calls a classification sidecar: POST {"image_b64": ...} to
// the configured URL, expecting {"label": ..., "score": ...}.
type HTTPClassifier struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewHTTPClassifier(url string, timeout time.Duration, logger *slog.Logger) *HTTPClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClassifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *HTTPClassifier) Classify(ctx context.Context, image []byte) (Classification, error) {
	body := map[string]string{"image_b64": base64.StdEncoding.EncodeToString(image)}
	raw, _, err := common.SendJSON(ctx, c.client, c.url, body, nil, c.logger)
	if err != nil {
		return Classification{}, common.WrapError(err, "vision request")
	}

	var resp Classification
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Classification{}, fmt.Errorf("decode vision response: %w", err)
	}
	if resp.Label == "" {
		return Classification{}, fmt.Errorf("vision response missing label")
	}

	c.logger.Debug("vision.classify.ok", "label", resp.Label, "score", resp.Score)
	return resp, nil
}
