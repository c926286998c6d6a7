// Package correct repairs common OCR noise in recognized text.
//
// Correction is best-effort. Apply never fails: any error or panic from a
// Corrector yields the input text unchanged.
package correct

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ironsheep/textswap/internal/llm"
)

// Corrector rewrites recognized text into a likely intended form.
type Corrector interface {
	Correct(ctx context.Context, text string) (string, error)
}

var lower = cases.Lower(language.Und)

// Lower folds text to lower case using Unicode case rules.
func Lower(text string) string {
	return lower.String(text)
}

// Apply runs c on text and returns its answer, or text itself when c is nil,
// returns an error, panics, or answers with nothing.
func Apply(ctx context.Context, c Corrector, text string, logger *zap.Logger) (out string) {
	if c == nil || text == "" {
		return text
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("corrector panicked, keeping raw text", zap.Any("panic", r))
			out = text
		}
	}()

	corrected, err := c.Correct(ctx, text)
	if err != nil {
		logger.Warn("correction failed, keeping raw text", zap.Error(err))
		return text
	}
	if strings.TrimSpace(corrected) == "" {
		return text
	}
	return corrected
}

// None leaves text untouched.
type None struct{}

// Correct implements Corrector.
func (None) Correct(_ context.Context, text string) (string, error) {
	return text, nil
}

// confusables maps characters OCR engines commonly emit in place of letters.
var confusables = map[rune]rune{
	'0': 'o',
	'1': 'l',
	'5': 's',
	'|': 'l',
	'$': 's',
	'@': 'a',
}

// Heuristic repairs letter/digit confusions inside words and normalizes
// whitespace. Tokens without letters (numbers, prices, dates) are kept.
type Heuristic struct{}

// Correct implements Corrector.
func (Heuristic) Correct(_ context.Context, text string) (string, error) {
	fields := strings.Fields(text)
	for i, f := range fields {
		fields[i] = repairToken(f)
	}
	return strings.Join(fields, " "), nil
}

// repairToken substitutes confusable characters in a token made mostly of
// letters.
func repairToken(tok string) string {
	letters, suspects := 0, 0
	for _, r := range tok {
		switch {
		case unicode.IsLetter(r):
			letters++
		case confusables[r] != 0:
			suspects++
		}
	}
	if letters == 0 || suspects == 0 || suspects > letters {
		return tok
	}

	var b strings.Builder
	b.Grow(len(tok))
	for _, r := range tok {
		if sub, ok := confusables[r]; ok {
			b.WriteRune(sub)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const llmInstruction = "You fix OCR errors. The user message is text read from an image by an OCR engine. " +
	"Correct misrecognized characters and spelling. Keep the language, meaning and word order. " +
	"Reply with the corrected text only."

// LLM asks a chat model to correct the text.
type LLM struct {
	client *llm.Client
}

// NewLLM creates an LLM corrector on client.
func NewLLM(client *llm.Client) *LLM {
	return &LLM{client: client}
}

// Correct implements Corrector.
func (c *LLM) Correct(ctx context.Context, text string) (string, error) {
	out, err := c.client.Complete(ctx, llmInstruction, text)
	if err != nil {
		return "", fmt.Errorf("llm correction: %w", err)
	}
	return out, nil
}
