package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/ironsheep/textswap/internal/detection"
	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/model"
	"github.com/ironsheep/textswap/internal/models"
)

// ErrEncode is returned when an output image cannot be encoded.
var ErrEncode = errors.New("failed to encode output image")

// Submission is one uploaded image.
type Submission struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Result is the response payload for one submission. Both images are data
// URIs of the preprocessed image: OriginalImage carries the region outlines
// and captions, TranslatedImage the replaced text.
type Result struct {
	OriginalImage   string             `json:"original_image"`
	TranslatedImage string             `json:"translated_image"`
	Translations    []model.TextRecord `json:"translations"`
}

// Pipeline runs submissions through decode, upscale, detect, the per-region
// stage, render and encode.
type Pipeline struct {
	models        *models.Set
	stage         Stage
	logger        *zap.Logger
	zoom          float64
	minConfidence float64
	strict        bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithZoom sets the upscale factor applied before detection.
func WithZoom(zoom float64) Option {
	return func(p *Pipeline) {
		p.zoom = zoom
	}
}

// WithMinConfidence drops detections scoring below c.
func WithMinConfidence(c float64) Option {
	return func(p *Pipeline) {
		p.minConfidence = c
	}
}

// WithStrict makes OCR and translation failures abort the submission.
func WithStrict(strict bool) Option {
	return func(p *Pipeline) {
		p.strict = strict
	}
}

// WithStage replaces the per-region stage built from the model set.
func WithStage(stage Stage) Option {
	return func(p *Pipeline) {
		p.stage = stage
	}
}

// New creates a Pipeline over a loaded model set.
func New(set *models.Set, opts ...Option) *Pipeline {
	p := &Pipeline{
		models: set,
		zoom:   imaging.DefaultZoom,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	if p.stage == nil {
		p.stage = NewExtraction(set.Recognizer, set.Corrector, set.Translator, p.strict, p.logger)
	}

	return p
}

// Submit processes one image. Regions are handled one at a time in detector
// order; the records in the result follow that order, minus regions that
// could not be cropped.
func (p *Pipeline) Submit(ctx context.Context, sub Submission) (*Result, error) {
	start := time.Now()

	img, format, err := imaging.Decode(sub.Data)
	if err != nil {
		return nil, err
	}

	contentType := sub.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = "image/" + format
	}

	work, dets, err := p.detect(ctx, img)
	if err != nil {
		return nil, err
	}

	records := make([]model.TextRecord, 0, len(dets))
	for i, det := range dets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := p.stage.Process(ctx, work, det)
		if errors.Is(err, imaging.ErrDegenerateRegion) {
			p.logger.Warn("skipping region",
				zap.Int("index", i),
				zap.Any("region", det.Region),
				zap.Error(err),
			)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", i, err)
		}
		records = append(records, rec)
	}

	out := p.models.Renderer.Render(work, records)

	original, err := imaging.EncodeDataURI(out.Annotated, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	translated, err := imaging.EncodeDataURI(out.Replacement, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	p.logger.Info("submission processed",
		zap.String("filename", sub.Filename),
		zap.String("format", format),
		zap.Int("regions", len(dets)),
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{
		OriginalImage:   original,
		TranslatedImage: translated,
		Translations:    records,
	}, nil
}

// Regions is the detection-only view of an image.
type Regions struct {
	Original   imaging.Dimensions `json:"original"`
	Processed  imaging.Dimensions `json:"processed"`
	Zoom       float64            `json:"zoom"`
	Detections []model.Detection  `json:"detections"`
}

// DetectRegions decodes and upscales data and returns the detections,
// without OCR or rendering.
func (p *Pipeline) DetectRegions(ctx context.Context, data []byte) (*Regions, error) {
	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}

	work, dets, err := p.detect(ctx, img)
	if err != nil {
		return nil, err
	}

	return &Regions{
		Original:   imaging.DimensionsOf(img),
		Processed:  imaging.DimensionsOf(work),
		Zoom:       p.zoom,
		Detections: dets,
	}, nil
}

// detect upscales img and runs the detector on the result.
func (p *Pipeline) detect(ctx context.Context, img image.Image) (image.Image, []model.Detection, error) {
	work := imaging.Upscale(img, p.zoom)

	if p.logger.Core().Enabled(zap.DebugLevel) {
		hints := imaging.MaskContours(imaging.RedMask(work), 4)
		p.logger.Debug("red mask contours", zap.Int("count", len(hints)))
	}

	dets, err := p.models.Detector.Detect(ctx, work)
	if err != nil {
		return nil, nil, fmt.Errorf("detect regions: %w", err)
	}
	return work, detection.Filter(dets, p.minConfidence), nil
}
