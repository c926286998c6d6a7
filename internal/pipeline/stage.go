package pipeline

import (
	"context"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/ironsheep/textswap/internal/correct"
	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/model"
	"github.com/ironsheep/textswap/internal/ocr"
	"github.com/ironsheep/textswap/internal/translate"
)

// Stage turns one detection into a text record.
//
// Process returns an error wrapping imaging.ErrDegenerateRegion when the
// region cannot be cropped; the pipeline skips such regions. Any other error
// aborts the request.
type Stage interface {
	Process(ctx context.Context, img image.Image, det model.Detection) (model.TextRecord, error)
}

// Extraction is the default Stage: crop, binarize, OCR, lowercase, correct
// and translate.
type Extraction struct {
	recognizer ocr.Recognizer
	corrector  correct.Corrector
	translator translate.Translator
	strict     bool
	logger     *zap.Logger
}

// NewExtraction creates the stage with its injected capabilities. In strict
// mode OCR and translation failures are returned; otherwise they are logged
// and the affected text becomes empty.
func NewExtraction(rec ocr.Recognizer, corr correct.Corrector, tr translate.Translator, strict bool, logger *zap.Logger) *Extraction {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extraction{
		recognizer: rec,
		corrector:  corr,
		translator: tr,
		strict:     strict,
		logger:     logger,
	}
}

// Process implements Stage.
func (e *Extraction) Process(ctx context.Context, img image.Image, det model.Detection) (model.TextRecord, error) {
	rec := model.TextRecord{
		Position:   det.Region,
		Confidence: det.Confidence,
	}

	crop, err := imaging.CropRegion(img, det.Region)
	if err != nil {
		return rec, err
	}
	binary, threshold := imaging.Binarize(crop)

	text, err := e.recognizer.Recognize(ctx, binary)
	if err != nil {
		if e.strict {
			return rec, fmt.Errorf("ocr: %w", err)
		}
		e.logger.Warn("ocr failed, region left empty",
			zap.Any("region", det.Region),
			zap.Error(err),
		)
		text = ""
	}

	if text != "" {
		text = correct.Lower(text)
		text = correct.Apply(ctx, e.corrector, text, e.logger)
	}
	rec.OriginalText = text

	e.logger.Debug("region recognized",
		zap.Any("region", det.Region),
		zap.Uint8("threshold", threshold),
		zap.String("text", text),
	)

	if text == "" {
		return rec, nil
	}

	translated, err := e.translator.Translate(ctx, text)
	if err != nil {
		if e.strict {
			return rec, fmt.Errorf("translate: %w", err)
		}
		e.logger.Warn("translation failed, region left empty",
			zap.Any("region", det.Region),
			zap.Error(err),
		)
		translated = ""
	}
	rec.TranslatedText = translated

	return rec, nil
}
