package server

import "github.com/ironsheep/ftmap/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func boolProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": description,
		"default":     false,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "map_render",
			Description: "Render a tactical map from scenario text. Labels, title and legend are placed to avoid each other and the game objects. The map is kept for map_preview and map_clash_boxes and optionally written to a file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"scenario": map[string]interface{}{
						"type":        "string",
						"description": "Scenario text: header, class list and object list, each section ending with a line holding '*'",
					},
					"resource": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to a TOML resource file with map colours and limits",
					},
					"image_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory sprite and background image names are relative to",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional output file relative to image_dir; the extension selects GIF, PNG or JPEG",
					},
					"bitonal":     boolProp("Black on white map without background image"),
					"debug":       boolProp("Outline every registered clash box"),
					"grid":        boolProp("Draw grid lines every ten map units"),
					"legend":      boolProp("Draw the class legend"),
					"real_thrust": boolProp("Headings in degrees with a single forward course leg"),
					"resample":    boolProp("Filter sprites when scaling and rotating"),
					"wallpaper":   boolProp("Tile the background image instead of stretching it"),
				},
				"required": []string{"scenario"},
			},
		},
		{
			Name:        "map_preview",
			Description: "Return the last rendered map, or a named region of it, as a base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"region": map[string]interface{}{
						"type":        "string",
						"enum":        imaging.Regions,
						"description": "Named region to extract. Default full",
						"default":     "full",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
			},
		},
		{
			Name:        "map_clash_boxes",
			Description: "List the clash boxes registered by the last render in registration order, with where each label, the title and the legend were placed.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
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
