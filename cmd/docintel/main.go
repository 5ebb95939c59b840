package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/export"
	"github.com/joseph-ayodele/docintel/internal/ner"
	"github.com/joseph-ayodele/docintel/internal/ocr"
	processor "github.com/joseph-ayodele/docintel/internal/pipeline"
	"github.com/joseph-ayodele/docintel/internal/vision"
)

func main() {
	xlsxOut := flag.String("xlsx", "", "write result workbook to this path instead of printing JSON")
	timeout := flag.Duration("timeout", 2*time.Minute, "processing deadline")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "docintel [-xlsx out.xlsx] <document-file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg := common.LoadConfig()
	proc := buildProcessor(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := proc.Process(ctx, path)
	if err != nil {
		logger.Error("processing failed", "path", path, "error", err)
		os.Exit(1)
	}

	if *xlsxOut != "" {
		book, err := export.NewService(logger).FieldsXLSX(res)
		if err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, book, 0o644); err != nil {
			logger.Error("write workbook", "path", *xlsxOut, "error", err)
			os.Exit(1)
		}
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
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
