package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	OCR    OCRConfig
	NER    NERConfig
	Vision VisionConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr       string
	RequestTimeout time.Duration
	SpoolDir       string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
	MaxPages      int
}

// NERConfig points at the external named-entity recognition capability.
// An empty URL disables the capability; extraction then runs on the
// pattern matchers alone.
type NERConfig struct {
	URL     string
	Timeout time.Duration
}

// VisionConfig points at the external image-classification capability.
// An empty URL disables it; classification falls back to keywords.
type VisionConfig struct {
	URL     string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPAddr:       getEnv("HTTP_ADDR", ":8000"),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 2*time.Minute),
			SpoolDir:       getEnv("SPOOL_DIR", os.TempDir()),
		},
		OCR: OCRConfig{
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		NER: NERConfig{
			URL:     getEnv("NER_URL", ""),
			Timeout: getEnvAsDuration("NER_TIMEOUT", 30*time.Second),
		},
		Vision: VisionConfig{
			URL:     getEnv("VISION_URL", ""),
			Timeout: getEnvAsDuration("VISION_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be positive", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
