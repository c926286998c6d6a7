package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/model"
)

// HTTPDetector calls an external inference service that runs the region
// detection model.
//
// The image is posted as a PNG in the multipart field "file". The service
// answers with:
//
//	{"detections": [{"box": [x1, y1, x2, y2], "confidence": 0.93}, ...]}
//
// Boxes are absolute pixel coordinates of the posted image. HTTPDetector is
// safe for concurrent use.
type HTTPDetector struct {
	url    string
	client *http.Client
}

// NewHTTPDetector creates a detector for the inference endpoint url.
func NewHTTPDetector(url string, timeout time.Duration) *HTTPDetector {
	return &HTTPDetector{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type inferenceResponse struct {
	Detections []struct {
		Box        [4]float64 `json:"box"`
		Confidence float64    `json:"confidence"`
	} `json:"detections"`
}

// Detect implements Detector.
func (d *HTTPDetector) Detect(ctx context.Context, img image.Image) ([]model.Detection, error) {
	payload, _, err := imaging.Encode(img, imaging.MimePNG)
	if err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "image.png")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("copy image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference failed with status: %d", resp.StatusCode)
	}

	var result inferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	dets := make([]model.Detection, 0, len(result.Detections))
	for _, r := range result.Detections {
		box := Box{
			X1:         int(r.Box[0]),
			Y1:         int(r.Box[1]),
			X2:         int(r.Box[2]),
			Y2:         int(r.Box[3]),
			Confidence: r.Confidence,
		}
		dets = append(dets, box.Detection())
	}
	return dets, nil
}
