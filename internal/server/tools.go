package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has transparency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_reflection",
			Description: "Show the color of one pixel before and after its hue is mirrored about the given angle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "Reflection angle in degrees (taken modulo 180)",
					},
				},
				"required": []string{"path", "x", "y", "angle"},
			},
		},
		{
			Name:        "image_reflect_hue",
			Description: "Mirror the hue of every pixel about the given angle and write the result as an image file. Transparency is preserved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the input image file",
					},
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "Reflection angle in degrees (taken modulo 180)",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional output path. Default: output.png next to the input",
					},
					"workers": map[string]interface{}{
						"type":        "integer",
						"description": "Optional number of concurrent row workers. Default: server setting",
					},
				},
				"required": []string{"path", "angle"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *Request) *Response {
	return resultResponse(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
