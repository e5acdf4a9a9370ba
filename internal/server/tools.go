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
			Name: "image_tile",
			Description: "Scale an image to a height of 100 pixels and cut it left to right into 100x100 PNG tiles " +
				"named tile_0.png, tile_1.png, ... in the output directory. The last tile is padded with transparency. " +
				"Returns the tile count and per-tile details.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image file",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write tiles into. Created with parents if missing.",
					},
				},
				"required": []string{"path", "output_dir"},
			},
		},
		{
			Name:        "image_tile_plan",
			Description: "Report how an image would be tiled (normalized width, tile count, last tile width) without writing any files.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image file",
					},
				},
				"required": []string{"path"},
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
