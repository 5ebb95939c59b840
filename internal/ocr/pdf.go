package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/joseph-ayodele/docintel/constants"
)

// minTextLayerChars is the threshold below which a PDF is treated as scanned
// and sent through rasterize+OCR instead.
const minTextLayerChars = 32

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	text, pages, err := pdfTextLayer(path)
	if err == nil && len(strings.TrimSpace(text)) >= minTextLayerChars {
		return Result{
			Text:       normalizeText(text),
			Pages:      pages,
			SourceType: constants.PDF,
			Method:     "pdf-text",
			Language:   e.cfg.TesseractLang,
			Confidence: 0.99, // digital text layer, not OCR
		}, nil
	}

	var warns []string
	if err != nil {
		e.logger.Warn("ocr.pdf.text_layer_failed", "path", path, "error", err)
		warns = append(warns, err.Error())
	}

	text, pages, w, err := e.pdfOCR(ctx, path)
	warns = append(warns, w...)
	if err != nil {
		return Result{SourceType: constants.PDF, Warnings: warns}, err
	}
	text = normalizeText(text)
	return Result{
		Text:       text,
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warns,
		Confidence: heuristicConfidence(text),
	}, nil
}

// pdfTextLayer reads the native text layer of a digital PDF.
func pdfTextLayer(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", 0, fmt.Errorf("pdf text layer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", 0, fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), r.NumPage(), nil
}

// pdfOCR rasterizes pages with pdftoppm and OCRs each one.
func (e *Extractor) pdfOCR(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "docintel-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("ocr.pdf.tmp_cleanup_failed", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	return b.String(), len(matches), warns, nil
}
