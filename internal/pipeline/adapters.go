package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/docintel/internal/extract"
	"github.com/joseph-ayodele/docintel/internal/ner"
	"github.com/joseph-ayodele/docintel/internal/ocr"
	"github.com/joseph-ayodele/docintel/internal/vision"
)

// OCRAdapter bridges the OCR extractor to the pipeline contract.
type OCRAdapter struct {
	e *ocr.Extractor
}

func NewOCRAdapter(e *ocr.Extractor, _ *slog.Logger) *OCRAdapter {
	return &OCRAdapter{e: e}
}

func (a *OCRAdapter) Extract(ctx context.Context, path string) (TextExtraction, error) {
	r, err := a.e.Extract(ctx, path)
	return TextExtraction{
		Text:       r.Text,
		Pages:      r.Pages,
		Method:     r.Method,
		Confidence: r.Confidence,
	}, err
}

// VisionAdapter feeds file bytes to the image-classification capability.
type VisionAdapter struct {
	c vision.Classifier
}

func NewVisionAdapter(c vision.Classifier) *VisionAdapter {
	return &VisionAdapter{c: c}
}

func (a *VisionAdapter) Classify(ctx context.Context, path string) (string, float64, error) {
	img, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("read image: %w", err)
	}
	res, err := a.c.Classify(ctx, img)
	if err != nil {
		return "", 0, err
	}
	return res.Label, res.Score, nil
}

// NERAdapter maps recognizer spans onto the extraction input type.
type NERAdapter struct {
	r ner.Recognizer
}

func NewNERAdapter(r ner.Recognizer) *NERAdapter {
	return &NERAdapter{r: r}
}

func (a *NERAdapter) Recognize(ctx context.Context, text string) ([]extract.Entity, error) {
	spans, err := a.r.Recognize(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]extract.Entity, 0, len(spans))
	for _, s := range spans {
		out = append(out, extract.Entity{Text: s.Text, Label: s.Label})
	}
	return out, nil
}
