package vision

import "context"

// Classification is the raw output of the external image classifier, in its
// native label space.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier is the external image-classification capability. Implementations
// take no responsibility for model loading or caching.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (Classification, error)
}
