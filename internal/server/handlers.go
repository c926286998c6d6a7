package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/model"
	"github.com/ironsheep/textswap/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_translate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", zap.String("tool", params.Name), zap.Error(err))
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_translate":
		return s.handleImageTranslate(ctx, args)
	case "image_detect_regions":
		return s.handleImageDetectRegions(ctx, args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type pathArgs struct {
	Path string `json:"path"`
}

func (a pathArgs) validate() error {
	if a.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

type imageTranslateArgs struct {
	Path          string `json:"path"`
	OutputDir     string `json:"output_dir"`
	IncludeImages bool   `json:"include_images"`
}

// TranslateResult is the image_translate tool output.
type TranslateResult struct {
	Translations    []model.TextRecord `json:"translations"`
	AnnotatedPath   string             `json:"annotated_path,omitempty"`
	TranslatedPath  string             `json:"translated_path,omitempty"`
	OriginalImage   string             `json:"original_image,omitempty"`
	TranslatedImage string             `json:"translated_image,omitempty"`
}

func (s *Server) handleImageTranslate(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageTranslateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := (pathArgs{Path: a.Path}).validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	res, err := s.pipeline.Submit(ctx, pipeline.Submission{
		Data:     data,
		Filename: filepath.Base(a.Path),
	})
	if err != nil {
		return nil, err
	}

	out := TranslateResult{Translations: res.Translations}
	if a.IncludeImages {
		out.OriginalImage = res.OriginalImage
		out.TranslatedImage = res.TranslatedImage
	}
	if a.OutputDir != "" {
		base := strings.TrimSuffix(filepath.Base(a.Path), filepath.Ext(a.Path))
		if out.AnnotatedPath, err = imaging.WriteDataURI(a.OutputDir, base+"_annotated", res.OriginalImage); err != nil {
			return nil, err
		}
		if out.TranslatedPath, err = imaging.WriteDataURI(a.OutputDir, base+"_translated", res.TranslatedImage); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Server) handleImageDetectRegions(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return s.pipeline.DetectRegions(ctx, data)
}

// DimensionsResult is the image_dimensions tool output.
type DimensionsResult struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	_, img, format, err := imaging.LoadFile(a.Path)
	if err != nil {
		return nil, err
	}
	dims := imaging.DimensionsOf(img)
	return DimensionsResult{
		Path:   a.Path,
		Width:  dims.Width,
		Height: dims.Height,
		Format: format,
	}, nil
}
