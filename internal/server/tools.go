package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func dimensionProperties() map[string]interface{} {
	return map[string]interface{}{
		"rows": map[string]interface{}{
			"type":        "integer",
			"description": "Number of grid rows (>= 1)",
		},
		"cols": map[string]interface{}{
			"type":        "integer",
			"description": "Number of grid columns (>= 1)",
		},
	}
}

func withProperties(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

var cellsProperty = map[string]interface{}{
	"type":        "array",
	"items":       map[string]interface{}{"type": "integer"},
	"description": "Row-major markers, one per cell: 1 = filled, 0 = crossed, anything else = blank",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Counting
		{
			Name:        "symmetry_count",
			Description: "Count the configurations of a rows x cols grid that are invariant under both mirror flips, grouped by number of filled cells. Counts are decimal strings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(dimensionProperties(), map[string]interface{}{
					"algorithm": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"optimized", "bruteforce"},
						"description": "Counting algorithm. Default optimized",
					},
				}),
				"required": []string{"rows", "cols"},
			},
		},
		{
			Name:        "symmetry_partition",
			Description: "Describe the fundamental quadrant of a grid: how many cells have orbits of size 4 (corners), 2 (edges) and 1 (center).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": dimensionProperties(),
				"required":   []string{"rows", "cols"},
			},
		},

		// Layouts
		{
			Name:        "layout_check",
			Description: "Check whether a layout is mirror symmetric and count its filled cells.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(dimensionProperties(), map[string]interface{}{
					"cells": cellsProperty,
				}),
				"required": []string{"rows", "cols", "cells"},
			},
		},
		{
			Name:        "layout_enumerate",
			Description: "List symmetric layouts with exactly the given number of filled cells.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(dimensionProperties(), map[string]interface{}{
					"on": map[string]interface{}{
						"type":        "integer",
						"description": "Number of filled cells",
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum layouts to return. Default 20",
						"default":     defaultEnumerateLimit,
					},
				}),
				"required": []string{"rows", "cols", "on"},
			},
		},
		{
			Name:        "layout_render",
			Description: "Render a layout to an image file. Filled cells are discs, crossed cells are X marks.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(dimensionProperties(), map[string]interface{}{
					"cells": cellsProperty,
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Output path without extension",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "jpeg", "svg"},
						"description": "Output format. Default png",
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Cell edge in pixels (>= 16)",
					},
				}),
				"required": []string{"rows", "cols", "cells", "output"},
			},
		},
		{
			Name:        "layout_decode",
			Description: "Read the markers back from a rendered PNG or JPEG layout and report whether it is symmetric.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(dimensionProperties(), map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				}),
				"required": []string{"path", "rows", "cols"},
			},
		},
		{
			Name:        "layout_crop_quadrant",
			Description: "Crop the top-left fundamental quadrant of a rendered layout and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(dimensionProperties(), map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
				}),
				"required": []string{"path", "rows", "cols"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
