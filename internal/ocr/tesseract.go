package ocr

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/textswap/internal/imaging"
)

// DefaultLanguages is the multi-script hint set: Latin and simplified Chinese.
var DefaultLanguages = []string{"eng", "chi_sim"}

// Recognizer turns an image crop into text.
//
// Implementations return trimmed text; an empty string is a valid result,
// not an error.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Tesseract recognizes text with the Tesseract engine via gosseract.
//
// A new gosseract client is created for every call, so a single Tesseract
// value is safe for concurrent use.
type Tesseract struct {
	// Languages is passed to Tesseract joined with '+', enabling every listed
	// script at once. Empty means DefaultLanguages.
	Languages []string

	// TessdataPrefix overrides the directory holding *.traineddata files.
	TessdataPrefix string

	// PageSegMode selects Tesseract's layout analysis. Crops are single text
	// blocks, so the default is PSM_SINGLE_BLOCK.
	PageSegMode gosseract.PageSegMode
}

// NewTesseract creates a recognizer for the given languages.
func NewTesseract(languages []string, tessdataPrefix string) *Tesseract {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	return &Tesseract{
		Languages:      languages,
		TessdataPrefix: tessdataPrefix,
		PageSegMode:    gosseract.PSM_SINGLE_BLOCK,
	}
}

// Recognize implements Recognizer.
//
// The crop is handed to Tesseract as an in-memory PNG; no temporary files
// are written.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	payload, _, err := imaging.Encode(img, imaging.MimePNG)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(t.Languages...); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetPageSegMode(t.PageSegMode); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImageFromBytes(payload); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// Info contains information about the OCR subsystem.
type Info struct {
	Available bool     `json:"available"`
	Version   string   `json:"version,omitempty"`
	Languages []string `json:"languages"`
	Backend   string   `json:"backend"`
}

// Info reports the Tesseract version and configured languages.
func (t *Tesseract) Info() Info {
	client := gosseract.NewClient()
	defer client.Close()

	version := client.Version()
	return Info{
		Available: version != "",
		Version:   version,
		Languages: t.Languages,
		Backend:   "gosseract",
	}
}
