package correct

import (
	"context"
	"errors"
	"testing"
)

func TestHeuristicCorrect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean text", "hello world", "hello world"},
		{"zero inside word", "h0use", "house"},
		{"one as l", "he1lo", "hello"},
		{"pipe as l", "ye|low", "yellow"},
		{"dollar as s", "a$k", "ask"},
		{"numbers kept", "123", "123"},
		{"price kept", "$5", "$5"},
		{"mixed tokens", "0pen 24 h0urs", "open 24 hours"},
		{"whitespace collapsed", "  open\t now \n", "open now"},
		{"mostly digits kept", "a100", "a100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Heuristic{}.Correct(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("Correct() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Correct(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLower(t *testing.T) {
	tests := map[string]string{
		"HELLO":   "hello",
		"Ünïcode": "ünïcode",
		"你好":      "你好",
		"123":     "123",
	}
	for in, want := range tests {
		if got := Lower(in); got != want {
			t.Errorf("Lower(%q) = %q, want %q", in, got, want)
		}
	}
}

type failing struct{ err error }

func (f failing) Correct(context.Context, string) (string, error) { return "", f.err }

type panicking struct{}

func (panicking) Correct(context.Context, string) (string, error) { panic("boom") }

type blank struct{}

func (blank) Correct(context.Context, string) (string, error) { return "   ", nil }

type exclaim struct{}

func (exclaim) Correct(_ context.Context, s string) (string, error) { return s + "!", nil }

func TestApply(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		c    Corrector
		in   string
		want string
	}{
		{"nil corrector", nil, "abc", "abc"},
		{"error keeps input", failing{errors.New("down")}, "abc", "abc"},
		{"panic keeps input", panicking{}, "abc", "abc"},
		{"blank answer keeps input", blank{}, "abc", "abc"},
		{"empty input skips corrector", panicking{}, "", ""},
		{"answer used", exclaim{}, "abc", "abc!"},
		{"none", None{}, "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(ctx, tt.c, tt.in, nil); got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}
