package processor

import (
	"context"

	"github.com/joseph-ayodele/docintel/internal/extract"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtraction, error)
}

type TextExtraction struct {
	Text       string
	Pages      int
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Confidence float64
}

// ImageClassifier is the optional Stage 2a: file -> native (label, score).
type ImageClassifier interface {
	Classify(ctx context.Context, path string) (label string, score float64, err error)
}

// EntityRecognizer is the optional Stage 3 input: text -> labeled spans.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]extract.Entity, error)
}
