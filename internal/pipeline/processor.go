package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/classify"
	"github.com/joseph-ayodele/docintel/internal/extract"
)

// maxRecognizerChars bounds the text handed to the entity recognizer so the
// NER stage stays cheap on large documents.
const maxRecognizerChars = 10000

// Processor sequences OCR -> classification -> field extraction and
// assembles the response. Vision and NER are optional capabilities; when
// absent (or failing) the pipeline degrades instead of erroring.
type Processor struct {
	Logger *slog.Logger
	OCR    TextExtractor
	Vision ImageClassifier
	NER    EntityRecognizer
}

// Result is the assembled processing outcome for one document.
type Result struct {
	DocumentType     string          `json:"document_type"`
	Confidence       float64         `json:"confidence"`
	PaymentRelevant  bool            `json:"payment_relevant"`
	OCRText          string          `json:"ocr_text"`
	Fields           []extract.Field `json:"extracted_fields"`
	ProcessingTimeMS int64           `json:"processing_time_ms"`
}

func NewProcessor(logger *slog.Logger, ocrx TextExtractor, vis ImageClassifier, rec EntityRecognizer) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocrx, Vision: vis, NER: rec}
}

// Process runs the full pipeline for one document file.
func (p *Processor) Process(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	ocrRes, err := p.OCR.Extract(ctx, path)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "path", path, "err", err)
		return Result{}, err
	}
	p.Logger.Info("processor.ocr.ok",
		"path", path,
		"method", ocrRes.Method,
		"pages", ocrRes.Pages,
		"bytes", len(ocrRes.Text),
		"confidence", ocrRes.Confidence,
	)

	label, conf, relevant := p.classifyDocument(ctx, path, ocrRes.Text)
	p.Logger.Info("processor.classify.ok", "label", label, "confidence", conf, "payment_relevant", relevant)

	fields := extract.ExtractFields(ocrRes.Text, p.recognizeEntities(ctx, ocrRes.Text))
	p.Logger.Info("processor.extract.ok", "fields", len(fields))

	return Result{
		DocumentType:     label,
		Confidence:       conf,
		PaymentRelevant:  relevant,
		OCRText:          ocrRes.Text,
		Fields:           fields,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	}, nil
}

// classifyDocument prefers the image classifier when configured, falling
// back to keyword scoring over the OCR text.
func (p *Processor) classifyDocument(ctx context.Context, path, text string) (string, float64, bool) {
	if p.Vision != nil {
		native, score, err := p.Vision.Classify(ctx, path)
		if err == nil {
			return classify.FromImageLabel(native, score)
		}
		p.Logger.Warn("processor.classify.vision_failed", "path", path, "err", err)
	}
	label, conf := classify.ByKeywords(text)
	return label, conf, constants.IsPaymentRelevant(label)
}

// recognizeEntities calls the recognizer over at most the first
// maxRecognizerChars characters. Failures degrade to zero entities.
func (p *Processor) recognizeEntities(ctx context.Context, text string) []extract.Entity {
	if p.NER == nil {
		return nil
	}
	if runes := []rune(text); len(runes) > maxRecognizerChars {
		text = string(runes[:maxRecognizerChars])
	}
	ents, err := p.NER.Recognize(ctx, text)
	if err != nil {
		p.Logger.Warn("processor.ner.failed", "err", err)
		return nil
	}
	return ents
}
