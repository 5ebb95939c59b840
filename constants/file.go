package constants

import "strings"

// Processing strategies for uploaded documents.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// MaxFileSize caps uploads at 10MB.
const MaxFileSize = 10 << 20

// AllowedExtensions holds the file extensions accepted for processing.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"tif":  {},
	"tiff": {},
	"bmp":  {},
	"webp": {},
}

// AllowedMIMETypes holds the sniffed content types accepted for upload.
var AllowedMIMETypes = map[string]struct{}{
	"image/png":       {},
	"image/jpeg":      {},
	"image/tiff":      {},
	"image/bmp":       {},
	"image/webp":      {},
	"application/pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a processing strategy,
// or "" when the extension is unsupported.
func MapExtToFormat(ext string) string {
	norm := NormalizeExt(ext)
	if norm == "pdf" {
		return PDF
	}
	if _, ok := AllowedExtensions[norm]; ok {
		return IMAGE
	}
	return ""
}
