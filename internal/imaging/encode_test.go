package imaging

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		contentType string
		wantFormat  imaging.Format
		wantMime    string
	}{
		{"image/jpeg", imaging.JPEG, MimeJPEG},
		{"image/jpg", imaging.JPEG, MimeJPEG},
		{"IMAGE/JPEG; charset=binary", imaging.JPEG, MimeJPEG},
		{"image/png", imaging.PNG, MimePNG},
		{"image/webp", imaging.PNG, MimePNG},
		{"application/octet-stream", imaging.PNG, MimePNG},
		{"", imaging.PNG, MimePNG},
	}

	for _, tt := range tests {
		format, mime := OutputFormat(tt.contentType)
		if format != tt.wantFormat || mime != tt.wantMime {
			t.Errorf("OutputFormat(%q) = %v, %s; want %v, %s", tt.contentType, format, mime, tt.wantFormat, tt.wantMime)
		}
	}
}

func TestEncodeDataURI(t *testing.T) {
	img := createInMemoryImage(16, 9, color.RGBA{10, 200, 30, 255})

	for _, ct := range []string{"image/png", "image/jpeg"} {
		t.Run(ct, func(t *testing.T) {
			uri, err := EncodeDataURI(img, ct)
			if err != nil {
				t.Fatalf("EncodeDataURI() error: %v", err)
			}
			if !strings.HasPrefix(uri, "data:"+ct+";base64,") {
				t.Errorf("uri prefix = %.30s", uri)
			}

			mime, data, err := ParseDataURI(uri)
			if err != nil {
				t.Fatalf("ParseDataURI() error: %v", err)
			}
			if mime != ct {
				t.Errorf("mime = %s, want %s", mime, ct)
			}
			decoded, _, err := Decode(data)
			if err != nil {
				t.Fatalf("payload does not decode: %v", err)
			}
			if DimensionsOf(decoded) != (Dimensions{Width: 16, Height: 9}) {
				t.Errorf("decoded dimensions = %+v", DimensionsOf(decoded))
			}
		})
	}
}

func TestParseDataURI_Errors(t *testing.T) {
	for _, uri := range []string{
		"image/png;base64,AAAA",
		"data:image/png;base64",
		"data:image/png,AAAA",
		"data:image/png;base64,!!!",
	} {
		if _, _, err := ParseDataURI(uri); err == nil {
			t.Errorf("ParseDataURI(%q) should fail", uri)
		}
	}
}

func TestExtension(t *testing.T) {
	if Extension(MimeJPEG) != ".jpg" || Extension(MimePNG) != ".png" || Extension("") != ".png" {
		t.Error("unexpected extension mapping")
	}
}

func TestWriteDataURI(t *testing.T) {
	uri, err := EncodeDataURI(createInMemoryImage(4, 4, color.White), "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteDataURI(dir, "sign_translated", uri)
	if err != nil {
		t.Fatalf("WriteDataURI() error: %v", err)
	}
	if path != filepath.Join(dir, "sign_translated.jpg") {
		t.Errorf("path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}

	if _, err := WriteDataURI(dir, "bad", "not a uri"); err == nil {
		t.Error("WriteDataURI() should reject a malformed URI")
	}
}
