// Package translate converts corrected text into the target language.
package translate

import (
	"context"
	"fmt"
	"unicode"

	"github.com/ironsheep/textswap/internal/llm"
)

// DefaultMaxInputRunes bounds the text sent to a model in one call.
const DefaultMaxInputRunes = 512

// Translator translates a single piece of text. It is only called with
// non-empty input.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// IsNumeric reports whether text carries no letters, so translating it
// would be a no-op (numbers, prices, punctuation).
func IsNumeric(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Truncate cuts text to at most n runes. n <= 0 disables truncation.
func Truncate(text string, n int) string {
	if n <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// Passthrough returns its input unchanged.
type Passthrough struct{}

// Translate implements Translator.
func (Passthrough) Translate(_ context.Context, text string) (string, error) {
	return text, nil
}

// OpenAI translates with a chat model behind an OpenAI-compatible API.
type OpenAI struct {
	client        *llm.Client
	source        string
	target        string
	maxInputRunes int
}

// NewOpenAI creates a translator from source to target language names
// (for example "English" and "Chinese"). An empty source lets the model
// detect the language.
func NewOpenAI(client *llm.Client, source, target string, maxInputRunes int) *OpenAI {
	if maxInputRunes <= 0 {
		maxInputRunes = DefaultMaxInputRunes
	}
	return &OpenAI{
		client:        client,
		source:        source,
		target:        target,
		maxInputRunes: maxInputRunes,
	}
}

func (t *OpenAI) instruction() string {
	from := "the source language"
	if t.source != "" {
		from = t.source
	}
	return fmt.Sprintf("Translate the user message from %s to %s. "+
		"Reply with the translation only, without quotes or explanations.", from, t.target)
}

// Translate implements Translator. Text without letters is returned as is.
func (t *OpenAI) Translate(ctx context.Context, text string) (string, error) {
	if IsNumeric(text) {
		return text, nil
	}

	out, err := t.client.Complete(ctx, t.instruction(), Truncate(text, t.maxInputRunes))
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	return out, nil
}
