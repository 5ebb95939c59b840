package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/common"
	"github.com/joseph-ayodele/docintel/internal/export"
	processor "github.com/joseph-ayodele/docintel/internal/pipeline"
)

// DocumentProcessor is the pipeline surface the server depends on.
type DocumentProcessor interface {
	Process(ctx context.Context, path string) (processor.Result, error)
}

// Service exposes the processing pipeline over HTTP.
type Service struct {
	proc     DocumentProcessor
	exporter *export.Service
	spoolDir string
	logger   *slog.Logger
}

func NewService(proc DocumentProcessor, exporter *export.Service, spoolDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if spoolDir == "" {
		spoolDir = os.TempDir()
	}
	return &Service{proc: proc, exporter: exporter, spoolDir: spoolDir, logger: logger}
}

// Routes builds the handler tree.
func (s *Service) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /process", s.handleProcess)
	return withRequestID(s.logger, mux)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleProcess accepts one multipart file upload, validates it, spools it
// to a temp file, and runs the pipeline. ?format=xlsx returns a workbook
// instead of JSON.
func (s *Service) handleProcess(w http.ResponseWriter, r *http.Request) {
	// Allow some multipart framing overhead on top of the document cap.
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxFileSize+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		common.BadRequestf(w, "missing file upload: %v", err)
		return
	}
	defer func() { _ = file.Close() }()

	v := common.NewValidator()
	v.Field("filename", header.Filename, common.Required, common.MaxLength(255))
	if v.HasErrors() {
		common.BadRequestf(w, "%s", v.ErrorMessage())
		return
	}
	if header.Size > constants.MaxFileSize {
		common.BadRequestf(w, "file too large: %d bytes (max %d)", header.Size, constants.MaxFileSize)
		return
	}

	// Server-side MIME detection; the client-provided Content-Type is
	// ignored.
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		common.BadRequestf(w, "unreadable upload: %v", err)
		return
	}
	if _, ok := constants.AllowedMIMETypes[mtype.String()]; !ok {
		common.BadRequestf(w, "unsupported file type: %s", mtype.String())
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		common.InternalErrorf(w, "rewind upload: %v", err)
		return
	}

	path, cleanup, err := s.spool(file, mtype.Extension())
	if err != nil {
		common.InternalErrorf(w, "spool upload: %v", err)
		return
	}
	defer cleanup()

	res, err := s.proc.Process(r.Context(), path)
	if err != nil {
		s.logger.Error("server.process.failed", "req_id", common.RequestIDFromContext(r.Context()), "error", err)
		common.InternalErrorf(w, "processing failed")
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		s.writeXLSX(w, res)
		return
	}
	common.WriteJSON(w, http.StatusOK, res)
}

// spool copies the upload to a uniquely named temp file the OCR tools can
// open by path.
func (s *Service) spool(src io.Reader, ext string) (string, func(), error) {
	path := filepath.Join(s.spoolDir, "docintel-"+uuid.New().String()+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if rerr := os.Remove(path); rerr != nil {
			s.logger.Warn("server.spool.cleanup_failed", "path", path, "error", rerr)
		}
	}
	return path, cleanup, nil
}

func (s *Service) writeXLSX(w http.ResponseWriter, res processor.Result) {
	book, err := s.exporter.FieldsXLSX(res)
	if err != nil {
		common.InternalErrorf(w, "export failed: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="extraction.xlsx"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(book)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(book)
}
