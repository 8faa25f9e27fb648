package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func objectSchema(required []string, props map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// Properties shared by the transforming tools.
var (
	pathProp    = prop("string", "Absolute path to the image file")
	bgProp      = prop("string", "Background for padded areas: \"auto\" to continue the image's border colours, or a colour as #RGB, #RRGGBB, #RRGGBBAA or \"r,g,b\". Defaults to the server setting.")
	outputProp  = prop("string", "Optional path to save the result to, in the source image's format. When omitted the result is returned as base64.")
	qualityProp = prop("integer", "JPEG and WEBP quality, 1-100. Defaults to the server setting.")
	widthProp   = prop("integer", "Target width in pixels. Zero derives it from the height and the source aspect ratio.")
	heightProp  = prop("integer", "Target height in pixels. Zero derives it from the width and the source aspect ratio.")
)

// transformSchema builds the schema of a transforming tool: the path and
// output properties plus the tool's own.
func transformSchema(required []string, own map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path":    pathProp,
		"output":  outputProp,
		"quality": qualityProp,
	}
	for k, v := range own {
		props[k] = v
	}
	return objectSchema(append([]string{"path"}, required...), props)
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, file size and the colour profile of its borders. The decoded image is cached for subsequent operations.",
			InputSchema: objectSchema([]string{"path"}, map[string]interface{}{"path": pathProp}),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: objectSchema([]string{"path"}, map[string]interface{}{"path": pathProp}),
		},
		{
			Name:        "image_background",
			Description: "Report the dominant colour of each image border, whether it is defined (covers at least 45% of the border) and what a thumbnail would do with it.",
			InputSchema: objectSchema([]string{"path"}, map[string]interface{}{"path": pathProp}),
		},

		// Sizing Operations
		{
			Name:        "image_resize",
			Description: "Scale the whole image to fit inside width x height and pad the rest of the canvas. With an automatic background, padding that would leave a visible seam becomes a smart crop instead.",
			InputSchema: transformSchema(nil, map[string]interface{}{
				"width":  widthProp,
				"height": heightProp,
				"bg":     bgProp,
			}),
		},
		{
			Name:        "image_crop",
			Description: "Cut an unscaled width x height region with its top-left corner at (x, y). Giving only one dimension makes the region square; areas outside the image show the background.",
			InputSchema: transformSchema(nil, map[string]interface{}{
				"x":      prop("integer", "Left edge X coordinate (0-based)"),
				"y":      prop("integer", "Top edge Y coordinate (0-based)"),
				"width":  prop("integer", "Region width in pixels"),
				"height": prop("integer", "Region height in pixels"),
				"bg":     bgProp,
			}),
		},
		{
			Name:        "image_cut",
			Description: "Smart crop: scale the image to cover width x height exactly and trim the overflowing side. Nothing is padded.",
			InputSchema: transformSchema(nil, map[string]interface{}{
				"width":  widthProp,
				"height": heightProp,
				"bg":     bgProp,
			}),
		},
		{
			Name:        "image_thumb",
			Description: "Smart thumbnail: keep the whole image on a width x height canvas, placing it so that its defined border colours continue into the padding. Falls back to a smart crop when the borders give no signal.",
			InputSchema: transformSchema(nil, map[string]interface{}{
				"width":  widthProp,
				"height": heightProp,
				"bg":     bgProp,
			}),
		},
		{
			Name:        "image_reduce",
			Description: "Shrink the image to fit inside max_width x max_height, keeping its aspect ratio. Images already within the bounds are returned unchanged.",
			InputSchema: transformSchema(nil, map[string]interface{}{
				"max_width":  prop("integer", "Maximum width in pixels"),
				"max_height": prop("integer", "Maximum height in pixels"),
			}),
		},

		// Appearance Operations
		{
			Name:        "image_rotate",
			Description: "Rotate the image counter-clockwise. The canvas grows to hold the rotated image and the uncovered corners show the background.",
			InputSchema: transformSchema([]string{"degrees"}, map[string]interface{}{
				"degrees": prop("number", "Counter-clockwise rotation in degrees"),
				"bg":      bgProp,
			}),
		},
		{
			Name:        "image_opacity",
			Description: "Scale the alpha channel of every pixel to a percentage of its value.",
			InputSchema: transformSchema([]string{"percent"}, map[string]interface{}{
				"percent": prop("integer", "Opacity in percent, 0-100"),
			}),
		},
		{
			Name:        "image_watermark",
			Description: "Draw another image over this one at a named position with the given opacity.",
			InputSchema: transformSchema([]string{"watermark"}, map[string]interface{}{
				"watermark": prop("string", "Absolute path to the watermark image"),
				"position": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"top-left", "top", "top-right", "left", "center", "right", "bottom-left", "bottom", "bottom-right"},
					"description": "Where to place the watermark (default: center)",
				},
				"opacity": prop("integer", "Watermark opacity in percent, 0-100 (default: 70)"),
			}),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
