package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// MIME types produced by the encoder.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
)

// OutputFormat picks the encoding for a declared upload content type.
//
// JPEG uploads are answered in JPEG; every other type (including unknown or
// empty ones) is answered in PNG, which is lossless and always encodable.
// The returned MIME type is the one to advertise in a data URI.
func OutputFormat(contentType string) (imaging.Format, string) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	switch mediaType {
	case "image/jpeg", "image/jpg", "image/pjpeg":
		return imaging.JPEG, MimeJPEG
	default:
		return imaging.PNG, MimePNG
	}
}

// Encode serializes img in the output format chosen for contentType.
func Encode(img image.Image, contentType string) ([]byte, string, error) {
	format, mimeType := OutputFormat(contentType)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(95)); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), mimeType, nil
}

// EncodeDataURI encodes img and wraps it as an embeddable data URI of the
// form "data:<mime>;base64,<payload>".
func EncodeDataURI(img image.Image, contentType string) (string, error) {
	data, mimeType, err := Encode(img, contentType)
	if err != nil {
		return "", err
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ParseDataURI splits a base64 data URI produced by EncodeDataURI into its
// MIME type and decoded payload.
func ParseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI: missing payload")
	}
	mimeType, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("unsupported data URI encoding: %q", header)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid data URI payload: %w", err)
	}
	return mimeType, data, nil
}

// Extension returns the file extension for a MIME type from OutputFormat.
func Extension(mimeType string) string {
	if mimeType == MimeJPEG {
		return ".jpg"
	}
	return ".png"
}

// WriteDataURI decodes uri and writes it to dir/name with the extension of
// its MIME type, returning the path written. dir is created if needed.
func WriteDataURI(dir, name, uri string) (string, error) {
	mimeType, data, err := ParseDataURI(uri)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, name+Extension(mimeType))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}
