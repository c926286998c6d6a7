package config

import "errors"

// Validation errors returned by Config.Validate. Callers match them with
// errors.Is; the wrapped message names the offending key.
var (
	// ErrInvalidAddr is returned when server.addr is empty.
	ErrInvalidAddr = errors.New("invalid server address: must not be empty")

	// ErrInvalidMode is returned when server.mode is not debug, release or test.
	ErrInvalidMode = errors.New("invalid server mode: must be debug, release or test")

	// ErrInvalidUploadSize is returned when server.max_upload_size is not positive.
	ErrInvalidUploadSize = errors.New("invalid max upload size: must be positive")

	// ErrInvalidZoom is returned when preprocess.zoom is not positive.
	ErrInvalidZoom = errors.New("invalid zoom factor: must be positive")

	// ErrUnknownDetector is returned for a detector.kind other than border or http.
	ErrUnknownDetector = errors.New("unknown detector kind: must be border or http")

	// ErrMissingDetectorURL is returned when the http detector has no url.
	ErrMissingDetectorURL = errors.New("missing detector url: required for the http detector")

	// ErrInvalidConfidence is returned when detector.min_confidence is outside [0, 1].
	ErrInvalidConfidence = errors.New("invalid min confidence: must be within [0, 1]")

	// ErrNoLanguages is returned when ocr.languages is empty.
	ErrNoLanguages = errors.New("no OCR languages configured")

	// ErrUnknownCorrector is returned for a corrector.kind other than heuristic, llm or none.
	ErrUnknownCorrector = errors.New("unknown corrector kind: must be heuristic, llm or none")

	// ErrUnknownTranslator is returned for a translator.kind other than openai or passthrough.
	ErrUnknownTranslator = errors.New("unknown translator kind: must be openai or passthrough")

	// ErrMissingTargetLanguage is returned when the openai translator has no target language.
	ErrMissingTargetLanguage = errors.New("missing target language for translator")

	// ErrInvalidFontScale is returned when render.font_scale is not positive.
	ErrInvalidFontScale = errors.New("invalid font scale: must be positive")

	// ErrInvalidColor is returned when a render colour is not a hex colour.
	ErrInvalidColor = errors.New("invalid colour: must be #RRGGBB or #RRGGBBAA")
)
