package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	pathProperty := map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}

	return []Tool{
		{
			Name: "image_translate",
			Description: "Find the marked text regions in an image, read and translate their text, and render " +
				"an outline overlay and a copy with the text replaced by its translation. Returns one record " +
				"per region with its position in the upscaled image, the recognized text, the translation and " +
				"the detector confidence.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Optional directory to write the overlay and translated images to",
					},
					"include_images": map[string]interface{}{
						"type":        "boolean",
						"description": "Include both images as base64 data URIs in the result. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_detect_regions",
			Description: "Upscale an image and run the region detector only, without OCR or translation. " +
				"Returns the original and upscaled dimensions and the detected regions in upscaled coordinates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width, height and format of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
	}
}
