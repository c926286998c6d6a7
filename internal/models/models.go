// Package models builds the process-wide capabilities the pipeline calls:
// region detector, OCR engine, corrector, translator and renderer.
//
// Load runs once at startup. The returned Set is read-only afterwards and is
// shared by every request; capabilities that cannot be called concurrently
// are wrapped so calls into them are serialized.
package models

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"github.com/ironsheep/textswap/internal/config"
	"github.com/ironsheep/textswap/internal/correct"
	"github.com/ironsheep/textswap/internal/detection"
	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/layout"
	"github.com/ironsheep/textswap/internal/llm"
	"github.com/ironsheep/textswap/internal/ocr"
	"github.com/ironsheep/textswap/internal/render"
	"github.com/ironsheep/textswap/internal/translate"
)

// Set holds the loaded capabilities.
type Set struct {
	Detector   detection.Detector
	Recognizer ocr.Recognizer
	Corrector  correct.Corrector
	Translator translate.Translator
	Renderer   *render.Renderer
}

// Load builds every capability described by cfg.
func Load(cfg *config.Config, logger *zap.Logger) (*Set, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	set := &Set{}

	switch cfg.Detector.Kind {
	case "http":
		set.Detector = detection.NewHTTPDetector(cfg.Detector.URL, cfg.Detector.Timeout)
	case "density":
		set.Detector = detection.NewDensityDetector()
	default:
		d := detection.NewBorderDetector()
		if cfg.Detector.MinArea > 0 {
			d.MinArea = cfg.Detector.MinArea
		}
		set.Detector = d
	}
	if cfg.Detector.Serialize {
		set.Detector = SerializeDetector(set.Detector)
	}

	set.Recognizer = ocr.NewTesseract(cfg.OCR.Languages, cfg.OCR.TessdataPrefix)
	if cfg.OCR.Serialize {
		set.Recognizer = SerializeRecognizer(set.Recognizer)
	}

	var client *llm.Client
	if cfg.Translator.Kind == "openai" || cfg.Corrector.Kind == "llm" {
		client = llm.New(llm.Config{
			BaseURL: cfg.Translator.BaseURL,
			APIKey:  cfg.Translator.APIKey,
			Model:   cfg.Translator.Model,
			Timeout: cfg.Translator.Timeout,
		})
	}

	switch cfg.Corrector.Kind {
	case "llm":
		set.Corrector = correct.NewLLM(client)
	case "none":
		set.Corrector = correct.None{}
	default:
		set.Corrector = correct.Heuristic{}
	}

	switch cfg.Translator.Kind {
	case "openai":
		set.Translator = translate.NewOpenAI(client,
			cfg.Translator.SourceLanguage, cfg.Translator.TargetLanguage, cfg.Translator.MaxInputRunes)
	default:
		set.Translator = translate.Passthrough{}
	}
	if cfg.Translator.Serialize {
		set.Translator = SerializeTranslator(set.Translator)
	}

	renderer, err := NewRenderer(cfg.Render)
	if err != nil {
		return nil, err
	}
	set.Renderer = renderer

	logger.Info("models loaded",
		zap.String("detector", cfg.Detector.Kind),
		zap.Strings("ocr_languages", cfg.OCR.Languages),
		zap.String("corrector", cfg.Corrector.Kind),
		zap.String("translator", cfg.Translator.Kind),
		zap.Bool("detector_serialized", cfg.Detector.Serialize),
		zap.Bool("ocr_serialized", cfg.OCR.Serialize),
		zap.Bool("translator_serialized", cfg.Translator.Serialize),
	)
	return set, nil
}

// NewRenderer builds the renderer for the configured font and colours.
func NewRenderer(rc config.RenderConfig) (*render.Renderer, error) {
	ts, err := layout.NewTypesetter(rc.FontScale, rc.Thickness, rc.LineSpacing)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	style := render.DefaultStyle()
	style.BoxThickness = rc.Thickness
	if rc.CaptionMax > 0 {
		style.CaptionMax = rc.CaptionMax
	}

	if style.BoxColor, err = parseColor("render.box_color", rc.BoxColor); err != nil {
		return nil, err
	}
	if style.CaptionColor, err = parseColor("render.caption_color", rc.CaptionColor); err != nil {
		return nil, err
	}
	if style.Background, err = parseColor("render.background", rc.Background); err != nil {
		return nil, err
	}
	if style.Foreground, err = parseColor("render.foreground", rc.Foreground); err != nil {
		return nil, err
	}

	return render.New(ts, nil, style), nil
}

func parseColor(key, hex string) (color.Color, error) {
	c, err := imaging.ParseHexColor(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", config.ErrInvalidColor, key, hex)
	}
	return c, nil
}
