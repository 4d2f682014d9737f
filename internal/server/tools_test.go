package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_load",
		"image_sample_reflection",
		"image_reflect_hue",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema missing 'properties' field")
			}

			// Every required parameter must be declared
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %q has no schema", r)
				}
			}
		})
	}
}

func TestToolDefinitions_RequiredParams(t *testing.T) {
	want := map[string][]string{
		"image_load":              {"path"},
		"image_sample_reflection": {"path", "x", "y", "angle"},
		"image_reflect_hue":       {"path", "angle"},
	}

	for _, tool := range GetToolDefinitions() {
		expected, ok := want[tool.Name]
		if !ok {
			continue
		}

		t.Run(tool.Name, func(t *testing.T) {
			required, _ := tool.InputSchema["required"].([]string)
			have := make(map[string]bool)
			for _, r := range required {
				have[r] = true
			}
			for _, r := range expected {
				if !have[r] {
					t.Errorf("%s should require '%s' parameter", tool.Name, r)
				}
			}
		})
	}
}
