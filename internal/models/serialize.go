package models

import (
	"context"
	"image"
	"sync"

	"github.com/ironsheep/textswap/internal/detection"
	"github.com/ironsheep/textswap/internal/model"
	"github.com/ironsheep/textswap/internal/ocr"
	"github.com/ironsheep/textswap/internal/translate"
)

// SerializeDetector wraps d so at most one Detect call runs at a time.
func SerializeDetector(d detection.Detector) detection.Detector {
	return &serialDetector{next: d}
}

type serialDetector struct {
	mu   sync.Mutex
	next detection.Detector
}

func (s *serialDetector) Detect(ctx context.Context, img image.Image) ([]model.Detection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.Detect(ctx, img)
}

// SerializeRecognizer wraps r so at most one Recognize call runs at a time.
func SerializeRecognizer(r ocr.Recognizer) ocr.Recognizer {
	return &serialRecognizer{next: r}
}

type serialRecognizer struct {
	mu   sync.Mutex
	next ocr.Recognizer
}

func (s *serialRecognizer) Recognize(ctx context.Context, img image.Image) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.Recognize(ctx, img)
}

// SerializeTranslator wraps t so at most one Translate call runs at a time.
func SerializeTranslator(t translate.Translator) translate.Translator {
	return &serialTranslator{next: t}
}

type serialTranslator struct {
	mu   sync.Mutex
	next translate.Translator
}

func (s *serialTranslator) Translate(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.Translate(ctx, text)
}
