// Package server implements the MCP (Model Context Protocol) server for image tiling.
//
// This package provides a JSON-RPC 2.0 server that exposes the tiler through the
// MCP protocol, so an interactive client can pick a source image and an output
// directory and have the image cut into tiles.
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
//   - image_tile: Cut an image into 100x100 tiles written as tile_<n>.png
//   - image_tile_plan: Report the tile layout without writing files
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (bad arguments or unknown
//     tool), -32601 (unknown method) or -32700 (unparseable request)
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "failed to decode image /a.png: ..."
//
// A failed image_tile call may still have written the tiles that came before
// the failing one; the response never reports a partial count.
//
// # Concurrency
//
// Requests are processed one at a time in arrival order. Logs go to the
// logger passed to New and never to stdout.
//
// # Usage
//
//	srv := server.New(tiler.New(), logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
