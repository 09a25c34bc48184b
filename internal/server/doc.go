// Package server implements the MCP (Model Context Protocol) server for map
// rendering.
//
// This package provides a JSON-RPC 2.0 server that exposes the map renderer
// through the MCP protocol, so an MCP client can draw a tactical map from
// scenario text and then inspect the result.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Diagnostics are logged to stderr and never share the protocol stream.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - map_render: Render scenario text, optionally writing the map to a file
//   - map_preview: Base64 PNG of the last map or a named region of it
//   - map_clash_boxes: Registered clash boxes and placed annotations of the
//     last map
//
// # State
//
// The server keeps the most recent successful render for map_preview and
// map_clash_boxes, and caches decoded sprite images per image directory for
// the lifetime of the process. Requests are handled one at a time.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(logger)
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    return err
//	}
package server
