package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"symmetry_count",
		"symmetry_partition",
		"layout_check",
		"layout_enumerate",
		"layout_render",
		"layout_decode",
		"layout_crop_quadrant",
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
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema.type: got %v, want object", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema.properties should be a map")
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("InputSchema.required should be []string")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required property %q is not defined", r)
				}
			}
			for _, dim := range []string{"rows", "cols"} {
				if _, ok := props[dim]; !ok {
					t.Errorf("missing %s property", dim)
				}
			}
		})
	}
}

func TestToolDefinitions_PropertiesNotShared(t *testing.T) {
	tools := GetToolDefinitions()
	var partition, count map[string]interface{}
	for _, tool := range tools {
		props := tool.InputSchema["properties"].(map[string]interface{})
		switch tool.Name {
		case "symmetry_partition":
			partition = props
		case "symmetry_count":
			count = props
		}
	}
	if _, ok := count["algorithm"]; !ok {
		t.Fatal("symmetry_count should accept algorithm")
	}
	if _, ok := partition["algorithm"]; ok {
		t.Error("symmetry_partition should not inherit algorithm")
	}
}
