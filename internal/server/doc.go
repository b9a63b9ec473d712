// Package server implements the MCP (Model Context Protocol) server for the
// symmetric grid tools.
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
// Counting:
//   - symmetry_count: Distribution of symmetric configurations by filled-cell count
//   - symmetry_partition: Corner, edge and center cells of the fundamental quadrant
//
// Layouts:
//   - layout_check: Is a layout mirror symmetric, and how many cells are filled
//   - layout_enumerate: Symmetric layouts with a given filled-cell count
//   - layout_render: Write a layout as PNG, JPEG or SVG
//   - layout_decode: Read markers back from a rendered raster
//   - layout_crop_quadrant: Extract the fundamental quadrant of a rendering
//
// Grid dimensions arrive as JSON numbers. A fractional value is rejected as
// a type mismatch and a value below 1 as invalid dimensions. Counts are
// returned as decimal strings since they exceed 64 bits for large grids.
//
// # Image Caching
//
// Decoded images are cached by path. layout_render evicts the path it
// writes, so a decode after a re-render sees the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// A panic inside a tool is recovered and reported the same way, so one bad
// request does not stop the server.
//
// # Usage
//
//	srv := server.New(server.WithLogger(logger))
//	if err := srv.Run(); err != nil {
//	    return err
//	}
//
// Diagnostics go to the configured logger, never to stdout.
package server
