// Package server implements the MCP (Model Context Protocol) server for the
// hue reflection tools.
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
//   - image_load: Load image and get metadata
//   - image_sample_reflection: Color of one pixel before and after reflection
//   - image_reflect_hue: Reflect a whole image and write it to disk
//
// # Image Caching
//
// Images read by image_load and image_sample_reflection are cached by path for
// the lifetime of the process. image_reflect_hue always decodes its input
// fresh and evicts the output path from the cache after writing it.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and a ToolFailure as data. Its kind is decode, encode, worker or
// invalid. Lines that are not JSON get -32700 with a null id; requests
// without an id are notifications and are never answered.
package server
