package main

import (
	"context"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/async"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/ner"
	"github.com/joseph-ayodele/docintel/internal/ocr"
	processor "github.com/joseph-ayodele/docintel/internal/pipeline"
	"github.com/joseph-ayodele/docintel/internal/vision"
)

func main() {
	dir := flag.String("dir", ".", "directory to scan for documents")
	workers := flag.Int("workers", 4, "concurrent processing workers")
	timeout := flag.Duration("timeout", 3*time.Minute, "per-document deadline")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	proc := buildProcessor(cfg, logger)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(*workers),
		async.WithProcessTimeout(*timeout),
	)

	queued := 0
	err := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		queued++
		return queue.Enqueue(context.Background(), async.Job{
			Path:        path,
			SubmittedAt: time.Now(),
			TraceID:     uuid.New().String(),
		})
	})
	if err != nil {
		logger.Error("walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("batch queued", "dir", *dir, "documents", queued)

	drainCtx, cancel := context.WithTimeout(context.Background(), time.Duration(queued+1)*(*timeout))
	defer cancel()
	queue.Shutdown(drainCtx)
}

func buildProcessor(cfg *common.Config, logger *slog.Logger) *processor.Processor {
	ocrx := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	var vis processor.ImageClassifier
	if cfg.Vision.URL != "" {
		vis = processor.NewVisionAdapter(vision.NewHTTPClassifier(cfg.Vision.URL, cfg.Vision.Timeout, logger))
	}
	var rec processor.EntityRecognizer
	if cfg.NER.URL != "" {
		rec = processor.NewNERAdapter(ner.NewHTTPRecognizer(cfg.NER.URL, cfg.NER.Timeout, logger))
	}

	return processor.NewProcessor(logger, processor.NewOCRAdapter(ocrx, logger), vis, rec)
}
