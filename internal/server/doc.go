// Package server implements the MCP (Model Context Protocol) server for the
// image transforms.
//
// This package provides a JSON-RPC 2.0 server that exposes the transform
// package through the MCP protocol, so that MCP clients can resize, crop and
// thumbnail images on disk.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata and border profile
//   - image_dimensions: Get width and height
//   - image_background: Report the border colour profile
//
// Sizing Operations:
//   - image_resize: Fit inside a box and pad
//   - image_crop: Extract an unscaled region
//   - image_cut: Smart crop to an exact size
//   - image_thumb: Smart thumbnail that continues the borders
//   - image_reduce: Shrink to fit, never enlarge
//
// Appearance Operations:
//   - image_rotate: Rotate counter-clockwise
//   - image_opacity: Scale the alpha channel
//   - image_watermark: Overlay another image
//
// Transforming tools return the result as base64 in the source format, or
// save it when an "output" path is given. A "bg" argument overrides the
// server's default background for that call.
//
// # Image Caching
//
// Decoded sources are cached by path and reused across tool calls. Every
// call transforms its own copy, so a cached source is never modified.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
