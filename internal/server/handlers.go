package server

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_tile").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		var argErr *argumentError
		if errors.As(err, &argErr) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		s.logger.Error().Err(err).Str("tool", params.Name).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_tile":
		return s.handleImageTile(args)
	case "image_tile_plan":
		return s.handleImageTilePlan(args)
	default:
		return nil, &argumentError{fmt.Sprintf("unknown tool: %s", name)}
	}
}

// argumentError marks a malformed tool call, as opposed to a failure while running it.
type argumentError struct {
	msg string
}

func (e *argumentError) Error() string { return e.msg }

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageTileArgs struct {
	Path      string `json:"path"`
	OutputDir string `json:"output_dir"`
}

func (s *Server) handleImageTile(args json.RawMessage) (interface{}, error) {
	var a imageTileArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, &argumentError{err.Error()}
	}
	if a.Path == "" {
		return nil, &argumentError{"path is required"}
	}
	if a.OutputDir == "" {
		return nil, &argumentError{"output_dir is required"}
	}
	return s.tiler.Split(a.Path, a.OutputDir)
}

type imageTilePlanArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageTilePlan(args json.RawMessage) (interface{}, error) {
	var a imageTilePlanArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, &argumentError{err.Error()}
	}
	if a.Path == "" {
		return nil, &argumentError{"path is required"}
	}
	return s.tiler.Plan(a.Path)
}
