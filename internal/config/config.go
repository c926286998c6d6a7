// Package config loads textswap settings from an optional YAML file and
// TEXTSWAP_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/textswap/internal/imaging"
)

// DefaultFile is read when no config path is given and the file exists.
const DefaultFile = "textswap.yaml"

// EnvFile holds local environment overrides such as API keys. Variables
// already set in the process environment win.
const EnvFile = ".env"

// EnvPrefix prefixes environment overrides, e.g. TEXTSWAP_SERVER_ADDR.
const EnvPrefix = "TEXTSWAP"

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Preprocess PreprocessConfig `mapstructure:"preprocess"`
	Detector   DetectorConfig   `mapstructure:"detector"`
	OCR        OCRConfig        `mapstructure:"ocr"`
	Corrector  CorrectorConfig  `mapstructure:"corrector"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Render     RenderConfig     `mapstructure:"render"`
	Pipeline   PipelineConfig   `mapstructure:"pipeline"`
}

type ServerConfig struct {
	Addr          string        `mapstructure:"addr"`
	Mode          string        `mapstructure:"mode"`
	AllowedOrigin string        `mapstructure:"allowed_origin"`
	MaxUploadSize int64         `mapstructure:"max_upload_size"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
}

type PreprocessConfig struct {
	Zoom float64 `mapstructure:"zoom"`
}

type DetectorConfig struct {
	Kind          string        `mapstructure:"kind"`
	URL           string        `mapstructure:"url"`
	MinConfidence float64       `mapstructure:"min_confidence"`
	MinArea       int           `mapstructure:"min_area"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Serialize     bool          `mapstructure:"serialize"`
}

type OCRConfig struct {
	Languages      []string `mapstructure:"languages"`
	TessdataPrefix string   `mapstructure:"tessdata_prefix"`
	Serialize      bool     `mapstructure:"serialize"`
}

type CorrectorConfig struct {
	Kind string `mapstructure:"kind"`
}

type TranslatorConfig struct {
	Kind           string        `mapstructure:"kind"`
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	SourceLanguage string        `mapstructure:"source_language"`
	TargetLanguage string        `mapstructure:"target_language"`
	MaxInputRunes  int           `mapstructure:"max_input_runes"`
	Timeout        time.Duration `mapstructure:"timeout"`
	Serialize      bool          `mapstructure:"serialize"`
}

type RenderConfig struct {
	FontScale    float64 `mapstructure:"font_scale"`
	Thickness    int     `mapstructure:"thickness"`
	LineSpacing  int     `mapstructure:"line_spacing"`
	CaptionMax   int     `mapstructure:"caption_max"`
	BoxColor     string  `mapstructure:"box_color"`
	CaptionColor string  `mapstructure:"caption_color"`
	Background   string  `mapstructure:"background"`
	Foreground   string  `mapstructure:"foreground"`
}

type PipelineConfig struct {
	// Strict aborts a request on the first OCR, correction or translation
	// failure instead of degrading the region to empty text.
	Strict bool `mapstructure:"strict"`
}

// ConfigDir is the per-user configuration directory, e.g.
// ~/.config/textswap on Linux.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "textswap")
}

// findConfig returns DefaultFile from the working directory, then from
// ConfigDir, or "" when neither exists.
func findConfig() string {
	for _, p := range []string{DefaultFile, filepath.Join(ConfigDir(), DefaultFile)} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load reads configuration. An empty path falls back to DefaultFile in the
// working directory or in ConfigDir, and to built-in defaults otherwise. An
// explicit path must exist.
// EnvFile in the working directory is loaded into the environment first.
func Load(path string) (*Config, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Dump returns the effective configuration for path as YAML, with secrets
// redacted. The configuration is validated first.
func Dump(path string) ([]byte, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}
	if _, err := decode(v); err != nil {
		return nil, err
	}

	settings := v.AllSettings()
	if tr, ok := settings["translator"].(map[string]interface{}); ok {
		if key, _ := tr["api_key"].(string); key != "" {
			tr["api_key"] = redacted
		}
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}

const redacted = "<redacted>"

func read(path string) (*viper.Viper, error) {
	if _, err := os.Stat(EnvFile); err == nil {
		if err := godotenv.Load(EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", EnvFile, err)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path == "" {
		path = findConfig()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origin", "http://localhost:3000")
	v.SetDefault("server.max_upload_size", 10*1024*1024)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)

	v.SetDefault("preprocess.zoom", imaging.DefaultZoom)

	v.SetDefault("detector.kind", "border")
	v.SetDefault("detector.url", "")
	v.SetDefault("detector.min_confidence", 0.25)
	v.SetDefault("detector.min_area", 400)
	v.SetDefault("detector.timeout", 30*time.Second)
	v.SetDefault("detector.serialize", false)

	v.SetDefault("ocr.languages", []string{"eng", "chi_sim"})
	v.SetDefault("ocr.tessdata_prefix", "")
	v.SetDefault("ocr.serialize", false)

	v.SetDefault("corrector.kind", "heuristic")

	v.SetDefault("translator.kind", "passthrough")
	v.SetDefault("translator.base_url", "")
	v.SetDefault("translator.api_key", "")
	v.SetDefault("translator.model", "gpt-4o-mini")
	v.SetDefault("translator.source_language", "English")
	v.SetDefault("translator.target_language", "Chinese")
	v.SetDefault("translator.max_input_runes", 512)
	v.SetDefault("translator.timeout", 30*time.Second)
	v.SetDefault("translator.serialize", false)

	v.SetDefault("render.font_scale", 0.7)
	v.SetDefault("render.thickness", 2)
	v.SetDefault("render.line_spacing", 10)
	v.SetDefault("render.caption_max", 20)
	v.SetDefault("render.box_color", "#00FF00")
	v.SetDefault("render.caption_color", "#FF0000")
	v.SetDefault("render.background", "#FFFFFF")
	v.SetDefault("render.foreground", "#000000")

	v.SetDefault("pipeline.strict", false)
}

// Validate checks the configuration and returns the first problem found,
// wrapping one of the sentinel errors.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return ErrInvalidAddr
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Server.Mode)
	}
	if c.Server.MaxUploadSize <= 0 {
		return ErrInvalidUploadSize
	}
	if c.Preprocess.Zoom <= 0 {
		return ErrInvalidZoom
	}

	switch c.Detector.Kind {
	case "border", "density":
	case "http":
		if c.Detector.URL == "" {
			return ErrMissingDetectorURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDetector, c.Detector.Kind)
	}
	if c.Detector.MinConfidence < 0 || c.Detector.MinConfidence > 1 {
		return ErrInvalidConfidence
	}

	if len(c.OCR.Languages) == 0 {
		return ErrNoLanguages
	}

	switch c.Corrector.Kind {
	case "heuristic", "llm", "none":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCorrector, c.Corrector.Kind)
	}

	switch c.Translator.Kind {
	case "passthrough":
	case "openai":
		if c.Translator.TargetLanguage == "" {
			return ErrMissingTargetLanguage
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTranslator, c.Translator.Kind)
	}

	if c.Render.FontScale <= 0 {
		return ErrInvalidFontScale
	}
	for key, hex := range map[string]string{
		"render.box_color":     c.Render.BoxColor,
		"render.caption_color": c.Render.CaptionColor,
		"render.background":    c.Render.Background,
		"render.foreground":    c.Render.Foreground,
	} {
		if _, err := imaging.ParseHexColor(hex); err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidColor, key, hex)
		}
	}
	return nil
}
