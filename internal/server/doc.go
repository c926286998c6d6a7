// Package server implements the MCP (Model Context Protocol) front of textswap.
//
// It is a JSON-RPC 2.0 server over stdio that exposes the translation
// pipeline as tools, so an MCP client can translate image files by path.
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
//   - image_translate: run the full pipeline on an image file; optionally
//     write both output images to a directory or return them as data URIs
//   - image_detect_regions: upscale and detect regions only
//   - image_dimensions: width, height and format of an image file
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Logs go to the injected zap logger, which must write to stderr; stdout
// carries the protocol.
package server
