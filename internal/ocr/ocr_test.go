package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
)

// stubRunner fakes the external binaries per command name.
type stubRunner struct {
	stdout map[string][]byte
	stderr map[string][]byte
	errs   map[string]error
	calls  [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	return s.stdout[name], s.stderr[name], s.errs[name]
}

func TestNewExtractor_Defaults(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	assert.Equal(t, "pdftoppm", e.cfg.Pdftoppm)
	assert.Equal(t, "tesseract", e.cfg.Tesseract)
	assert.Equal(t, "eng", e.cfg.TesseractLang)
	assert.Equal(t, 300, e.cfg.DPI)
	assert.NotNil(t, e.logger)
	assert.NotNil(t, e.runner)
}

func TestExtract_Image(t *testing.T) {
	stub := &stubRunner{stdout: map[string][]byte{
		"tesseract": []byte("RECEIPT\r\nTotal: $45.47  \n\n"),
	}}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), "/spool/receipt.png")
	require.NoError(t, err)

	assert.Equal(t, "RECEIPT\nTotal: $45.47", res.Text)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, "eng", res.Language)
	assert.InDelta(t, 0.6, res.Confidence, 1e-9)

	require.Len(t, stub.calls, 1)
	assert.Equal(t, []string{"tesseract", "/spool/receipt.png", "stdout", "-l", "eng"}, stub.calls[0])
}

func TestExtract_ImageTessdataDir(t *testing.T) {
	stub := &stubRunner{stdout: map[string][]byte{"tesseract": []byte("hello world text")}}
	e := NewExtractor(Config{TessdataDir: "/opt/tessdata", TesseractLang: "deu"}, nil)
	e.runner = stub

	_, err := e.Extract(context.Background(), "scan.tiff")
	require.NoError(t, err)
	require.Len(t, stub.calls, 1)
	assert.Equal(t,
		[]string{"tesseract", "scan.tiff", "stdout", "-l", "deu", "--tessdata-dir", "/opt/tessdata"},
		stub.calls[0])
}

func TestExtract_ImageFailure(t *testing.T) {
	stub := &stubRunner{
		errs:   map[string]error{"tesseract": errors.New("exit status 1")},
		stderr: map[string][]byte{"tesseract": []byte("cannot open input")},
	}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), "bad.png")
	require.Error(t, err)
	assert.Equal(t, constants.IMAGE, res.SourceType)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "cannot open input")
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = &stubRunner{}

	_, err := e.Extract(context.Background(), "report.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestExtract_ScannedPDFNoPagesRendered(t *testing.T) {
	// The text-layer pass fails (file does not exist) and pdftoppm "succeeds"
	// without producing any page images.
	stub := &stubRunner{}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), "/nonexistent/scan.pdf")
	require.Error(t, err)
	assert.Equal(t, constants.PDF, res.SourceType)
	assert.Contains(t, res.Warnings, "pdftoppm produced no images")

	require.NotEmpty(t, stub.calls)
	assert.Equal(t, "pdftoppm", stub.calls[0][0])
	assert.Contains(t, stub.calls[0], "-png")
	assert.Contains(t, stub.calls[0], "-r")
}

func TestNormalizeText(t *testing.T) {
	in := "line one   \r\nline two\t\n\n  keep indent\n"
	assert.Equal(t, "line one\nline two\n\n  keep indent", normalizeText(in))
}

func TestHeuristicConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "empty", text: "", want: 0.2},
		{name: "date only", text: "see 01/15/2024", want: 0.4},
		{name: "currency and amount", text: "$ plus 12.50", want: 0.5},
		{name: "doc word", text: "invoice", want: 0.3},
		{
			name: "all signals",
			text: "Invoice dated 01/15/2024 total $1,234.56 " +
				"with enough body text to push this well past the length bonus threshold for scoring.",
			want: 0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, heuristicConfidence(tt.text), 1e-9)
		})
	}
}
