package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/ironsheep/hue-reflect/internal/imaging"
	"github.com/ironsheep/hue-reflect/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_reflect_hue").
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
// Tool execution errors return a JSON-RPC error response with code -32000
// whose data is a ToolFailure.
func (s *Server) handleToolsCall(req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		failure := ToolFailure{Tool: params.Name, Kind: failureKind(err), Error: err.Error()}
		log.Printf("Tool %s failed (%s): %v", failure.Tool, failure.Kind, err)
		return errorResponse(req.ID, codeToolFailed, "Tool execution failed", failure)
	}

	return resultResponse(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_reflection":
		return s.handleImageSampleReflection(args)
	case "image_reflect_hue":
		return s.handleImageReflectHue(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type sampleReflectionArgs struct {
	Path  string   `json:"path"`
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Angle *float64 `json:"angle"`
}

func (s *Server) handleImageSampleReflection(args json.RawMessage) (interface{}, error) {
	var a sampleReflectionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Angle == nil {
		return nil, errors.New("angle is required")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleReflection(img, a.X, a.Y, imaging.NormalizeAxis(*a.Angle))
}

type reflectHueArgs struct {
	Path    string   `json:"path"`
	Angle   *float64 `json:"angle"`
	Output  string   `json:"output"`
	Workers *int     `json:"workers"`
}

// ReflectHueResult describes a completed image_reflect_hue call.
type ReflectHueResult struct {
	Output    string  `json:"output"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Axis      float64 `json:"axis"`
	Workers   int     `json:"workers"`
	ElapsedMS int64   `json:"elapsed_ms"`
}

func (s *Server) handleImageReflectHue(args json.RawMessage) (interface{}, error) {
	var a reflectHueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if a.Angle == nil {
		return nil, errors.New("angle is required")
	}

	workers := s.opts.Workers
	if a.Workers != nil {
		if *a.Workers < 0 {
			return nil, fmt.Errorf("workers must be >= 0, got %d", *a.Workers)
		}
		workers = *a.Workers
	}

	output := a.Output
	if output == "" {
		output = filepath.Join(filepath.Dir(a.Path), pipeline.DefaultOutput)
	}

	res, err := pipeline.Run(pipeline.Options{
		InputPath:  a.Path,
		OutputPath: output,
		Angle:      *a.Angle,
		Workers:    workers,
	})
	if err != nil {
		return nil, err
	}

	// The file at output changed; drop any stale cached copy.
	s.cache.Evict(output)

	return &ReflectHueResult{
		Output:    res.OutputPath,
		Width:     res.Width,
		Height:    res.Height,
		Axis:      res.Axis,
		Workers:   res.Workers,
		ElapsedMS: (res.LoadTime + res.ProcessTime).Milliseconds(),
	}, nil
}
