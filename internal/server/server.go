package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/hue-reflect/internal/config"
	"github.com/ironsheep/hue-reflect/internal/imaging"
)

// Name is reported as serverInfo.name during the initialize handshake.
const Name = "hue-reflect-mcp"

const protocolVersion = "2024-11-05"

// maxRequestSize bounds one newline-delimited request.
const maxRequestSize = 1024 * 1024

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// Options configures a Server.
type Options struct {
	// Workers is the default row worker count for image_reflect_hue.
	// 0 means one per processor.
	Workers int

	// Version is reported as serverInfo.version. Empty means "dev".
	Version string

	// Debug logs every request method and tool failure detail.
	Debug bool
}

// Server answers MCP requests for the hue reflection tools.
type Server struct {
	opts    Options
	cache   *imaging.ImageCache
	methods map[string]func(*Request) *Response
}

// Request is an incoming JSON-RPC 2.0 message. A nil ID marks a notification.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing JSON-RPC 2.0 message.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
}

// RPCError is the error member of a Response.
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ToolFailure is the Data of a failed tools/call response.
type ToolFailure struct {
	Tool  string `json:"tool"`
	Kind  string `json:"kind"` // decode, encode, worker or invalid
	Error string `json:"error"`
}

// New creates a server with the given options.
func New(opts Options) *Server {
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{
		opts:  opts,
		cache: imaging.NewImageCache(),
	}
	s.methods = map[string]func(*Request) *Response{
		"initialize": s.handleInitialize,
		"ping":       s.handlePing,
		"tools/list": s.handleToolsList,
		"tools/call": s.handleToolsCall,
	}
	return s
}

// FromConfig creates a server using the loaded hue-reflect settings.
func FromConfig(cfg *config.Config, version string) *Server {
	return New(Options{
		Workers: cfg.Workers,
		Version: version,
		Debug:   cfg.Debug(),
	})
}

// Run serves requests from stdin and writes responses to stdout.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve processes newline-delimited JSON-RPC requests from r until EOF and
// writes one response line per request to w. Notifications get no response.
// Serve stops early only when w fails.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		resp := s.handleLine(line)
		if resp == nil {
			continue
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}
	return nil
}

func (s *Server) handleLine(line []byte) *Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		log.Printf("Failed to parse request: %v", err)
		return errorResponse(nil, codeParseError, "Parse error", err.Error())
	}
	return s.handleRequest(&req)
}

// handleRequest dispatches req by method. Unknown notifications, such as
// notifications/initialized, are accepted silently.
func (s *Server) handleRequest(req *Request) *Response {
	if s.opts.Debug {
		log.Printf("request %q id=%v", req.Method, req.ID)
	}

	handler, ok := s.methods[req.Method]
	switch {
	case !ok && req.ID == nil:
		return nil
	case !ok:
		return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), nil)
	}

	resp := handler(req)
	if req.ID == nil {
		return nil
	}
	return resp
}

func (s *Server) handleInitialize(req *Request) *Response {
	return resultResponse(req.ID, map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    Name,
			"version": s.opts.Version,
		},
	})
}

func (s *Server) handlePing(req *Request) *Response {
	return resultResponse(req.ID, map[string]interface{}{})
}

func resultResponse(id interface{}, result interface{}) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id interface{}, code int, message string, data interface{}) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &RPCError{Code: code, Message: message, Data: data},
	}
}

// failureKind classifies a tool error by the imaging error taxonomy.
func failureKind(err error) string {
	var werr *imaging.WorkerError
	switch {
	case errors.Is(err, imaging.ErrDecode):
		return "decode"
	case errors.Is(err, imaging.ErrEncode):
		return "encode"
	case errors.As(err, &werr):
		return "worker"
	default:
		return "invalid"
	}
}
