package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/export"
	"github.com/joseph-ayodele/docintel/internal/ner"
	"github.com/joseph-ayodele/docintel/internal/ocr"
	processor "github.com/joseph-ayodele/docintel/internal/pipeline"
	"github.com/joseph-ayodele/docintel/internal/server"
	"github.com/joseph-ayodele/docintel/internal/vision"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	proc := buildProcessor(cfg, logger)
	svc := server.NewService(proc, export.NewService(logger), cfg.Server.SpoolDir, logger)

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           svc.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.RequestTimeout,
		WriteTimeout:      cfg.Server.RequestTimeout,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down...")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	logger.Info("http serving",
		"addr", cfg.Server.HTTPAddr,
		"ner_enabled", cfg.NER.URL != "",
		"vision_enabled", cfg.Vision.URL != "",
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http serve", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
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
