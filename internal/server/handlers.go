package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ironsheep/ftmap/internal/config"
	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/imaging"
	"github.com/ironsheep/ftmap/internal/placement"
	"github.com/ironsheep/ftmap/internal/render"
)

// errNoMap is returned by tools that inspect a render before one exists.
var errNoMap = errors.New("no map rendered yet: call map_render first")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "map_render", "map_preview").
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Warn("tool failed", "tool", params.Name, "err", err)
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "map_render":
		return s.handleMapRender(ctx, args)
	case "map_preview":
		return s.handleMapPreview(args)
	case "map_clash_boxes":
		return s.handleMapClashBoxes()
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

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

// unmarshalArgs decodes tool arguments, treating absent arguments as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

type mapRenderArgs struct {
	Scenario   string `json:"scenario"`
	Resource   string `json:"resource"`
	ImageDir   string `json:"image_dir"`
	Output     string `json:"output"`
	Bitonal    bool   `json:"bitonal"`
	Debug      bool   `json:"debug"`
	Grid       bool   `json:"grid"`
	Legend     bool   `json:"legend"`
	RealThrust bool   `json:"real_thrust"`
	Resample   bool   `json:"resample"`
	Wallpaper  bool   `json:"wallpaper"`
}

// MapRenderResult summarises a render.
type MapRenderResult struct {
	Title   string `json:"title"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Classes int    `json:"classes"`
	Objects int    `json:"objects"`
	Labels  int    `json:"labels"`
	Boxes   int    `json:"clash_boxes"`
	Output  string `json:"output,omitempty"`
}

func (s *Server) handleMapRender(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a mapRenderArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Scenario) == "" {
		return nil, errors.New("scenario is required")
	}

	output, err := outputPath(a.ImageDir, a.Output)
	if err != nil {
		return nil, err
	}

	res, err := config.LoadResource(a.Resource)
	if err != nil {
		return nil, err
	}

	opts := render.Options{
		Options: config.Options{
			Resample:   a.Resample,
			Bitonal:    a.Bitonal,
			Debug:      a.Debug,
			Grid:       a.Grid,
			Legend:     a.Legend,
			RealThrust: a.RealThrust,
			Wallpaper:  a.Wallpaper,
			ImageDir:   a.ImageDir,
			Output:     output,
		},
		Images: s.images(a.ImageDir),
		Logger: s.log,
	}

	sc, result, err := render.RenderData(ctx, strings.NewReader(a.Scenario), res, opts)
	if err != nil {
		return nil, err
	}
	s.last = result

	if output != "" {
		if err := imaging.Save(output, result.Image, result.Quantizer); err != nil {
			return nil, err
		}
		s.log.Info("map written", "output", output)
	}

	b := result.Image.Bounds()
	return &MapRenderResult{
		Title:   sc.Title,
		Width:   b.Dx(),
		Height:  b.Dy(),
		Classes: len(sc.Classes),
		Objects: len(sc.Objects),
		Labels:  len(result.Labels),
		Boxes:   len(result.Boxes),
		Output:  output,
	}, nil
}

// outputPath resolves the requested output file under dir. Clients may only
// write inside the image directory, so absolute names and names climbing out
// with ".." are refused.
func outputPath(dir, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("output %q must be a relative path inside image_dir", name)
	}
	return filepath.Join(dir, name), nil
}

type mapPreviewArgs struct {
	Region string  `json:"region"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleMapPreview(args json.RawMessage) (interface{}, error) {
	var a mapPreviewArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if s.last == nil {
		return nil, errNoMap
	}
	return imaging.Preview(s.last.Image, a.Region, a.Scale)
}

// MapClashBoxesResult lists what the last render registered and placed.
type MapClashBoxesResult struct {
	Boxes  []geom.Box           `json:"boxes"`
	Labels []render.PlacedLabel `json:"labels"`
	Title  *geom.Box            `json:"title,omitempty"`
	Legend *placement.Legend    `json:"legend,omitempty"`
}

func (s *Server) handleMapClashBoxes() (interface{}, error) {
	if s.last == nil {
		return nil, errNoMap
	}
	return &MapClashBoxesResult{
		Boxes:  s.last.Boxes,
		Labels: s.last.Labels,
		Title:  s.last.Title,
		Legend: s.last.Legend,
	}, nil
}
