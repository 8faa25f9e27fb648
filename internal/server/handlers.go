package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-artifex/internal/imaging"
	"github.com/ironsheep/image-artifex/internal/transform"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_thumb").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "err", err)
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
//
// Each transforming handler:
//  1. Unmarshals arguments from JSON
//  2. Resolves the background and quality against the server defaults
//  3. Wraps the cached source in a fresh transform.Image
//  4. Applies the transform
//  5. Saves the result to the output path or returns it as base64
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_background":
		return s.handleImageBackground(args)

	// Sizing Operations
	case "image_resize":
		return s.handleImageResize(args)
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_cut":
		return s.handleImageCut(args)
	case "image_thumb":
		return s.handleImageThumb(args)
	case "image_reduce":
		return s.handleImageReduce(args)

	// Appearance Operations
	case "image_rotate":
		return s.handleImageRotate(args)
	case "image_opacity":
		return s.handleImageOpacity(args)
	case "image_watermark":
		return s.handleImageWatermark(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

// LoadResult is the image_load result: the file metadata of the cached
// source plus the border profile of its pixels.
type LoadResult struct {
	imaging.ImageInfo
	Background imaging.BackgroundReport `json:"background"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return &LoadResult{
		ImageInfo:  src.Info,
		Background: imaging.DescribeProfile(imaging.ClassifyEdges(src.Image)),
	}, nil
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

func (s *Server) handleImageBackground(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	im, err := s.open(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DescribeProfile(im.Background()), nil
}

// === Transform plumbing ===

// outputArgs are the arguments every transforming tool accepts.
type outputArgs struct {
	Path    string `json:"path"`
	Output  string `json:"output"`
	Quality int    `json:"quality"`
	BG      string `json:"bg"`
}

// SavedResult is returned instead of the encoded image when a tool call
// names an output path.
type SavedResult struct {
	Output   string `json:"output"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MimeType string `json:"mime_type"`
}

func (s *Server) open(path string) (*transform.Image, error) {
	src, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	opts := append([]transform.Option{transform.WithLogger(s.logger)}, s.imageOpts...)
	return transform.FromSource(src, opts...)
}

func (s *Server) backgroundFor(a outputArgs) (transform.Background, error) {
	if a.BG == "" {
		return s.background, nil
	}
	return transform.ParseBackground(a.BG)
}

// run opens the source, applies fn and delivers the result as the call's
// output arguments ask.
func (s *Server) run(a outputArgs, fn func(*transform.Image, transform.Background) error) (interface{}, error) {
	bg, err := s.backgroundFor(a)
	if err != nil {
		return nil, err
	}
	im, err := s.open(a.Path)
	if err != nil {
		return nil, err
	}
	if err := fn(im, bg); err != nil {
		return nil, err
	}

	quality := a.Quality
	if quality <= 0 {
		quality = s.quality
	}

	if a.Output == "" {
		return imaging.EncodeBase64(im.Raster(), im.Format(), quality)
	}
	if !im.Save(a.Output, quality) {
		return nil, fmt.Errorf("failed to save image to %s", a.Output)
	}
	return &SavedResult{
		Output:   a.Output,
		Width:    im.Width(),
		Height:   im.Height(),
		MimeType: im.ContentType(),
	}, nil
}

// === Sizing Operation Handlers ===

type imageSizeArgs struct {
	outputArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.run(a.outputArgs, func(im *transform.Image, bg transform.Background) error {
		return im.Resize(a.Width, a.Height, bg)
	})
}

type imageCropArgs struct {
	imageSizeArgs
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.run(a.outputArgs, func(im *transform.Image, bg transform.Background) error {
		return im.Crop(a.X, a.Y, a.Width, a.Height, bg)
	})
}

func (s *Server) handleImageCut(args json.RawMessage) (interface{}, error) {
	var a imageSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.run(a.outputArgs, func(im *transform.Image, bg transform.Background) error {
		return im.Cut(a.Width, a.Height, bg)
	})
}

func (s *Server) handleImageThumb(args json.RawMessage) (interface{}, error) {
	var a imageSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.run(a.outputArgs, func(im *transform.Image, bg transform.Background) error {
		return im.Thumb(a.Width, a.Height, bg)
	})
}

type imageReduceArgs struct {
	outputArgs
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
}

func (s *Server) handleImageReduce(args json.RawMessage) (interface{}, error) {
	var a imageReduceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.run(a.outputArgs, func(im *transform.Image, _ transform.Background) error {
		return im.Reduce(a.MaxWidth, a.MaxHeight)
	})
}

// === Appearance Operation Handlers ===

type imageRotateArgs struct {
	outputArgs
	Degrees float64 `json:"degrees"`
}

func (s *Server) handleImageRotate(args json.RawMessage) (interface{}, error) {
	var a imageRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.run(a.outputArgs, func(im *transform.Image, bg transform.Background) error {
		return im.Rotate(a.Degrees, bg)
	})
}

type imageOpacityArgs struct {
	outputArgs
	Percent int `json:"percent"`
}

func (s *Server) handleImageOpacity(args json.RawMessage) (interface{}, error) {
	var a imageOpacityArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.run(a.outputArgs, func(im *transform.Image, _ transform.Background) error {
		im.Opacity(a.Percent)
		return nil
	})
}

type imageWatermarkArgs struct {
	outputArgs
	Watermark string `json:"watermark"`
	Position  string `json:"position"`
	Opacity   *int   `json:"opacity"`
}

func (s *Server) handleImageWatermark(args json.RawMessage) (interface{}, error) {
	var a imageWatermarkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opacity := transform.DefaultWatermarkOpacity
	if a.Opacity != nil {
		opacity = *a.Opacity
	}
	return s.run(a.outputArgs, func(im *transform.Image, _ transform.Background) error {
		return im.Watermark(a.Watermark, a.Position, opacity)
	})
}
