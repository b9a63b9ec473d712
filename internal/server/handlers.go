package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/egg-symmetry/internal/grid"
	"github.com/ironsheep/egg-symmetry/internal/imaging"
	"github.com/ironsheep/egg-symmetry/internal/logging"
	"github.com/ironsheep/egg-symmetry/internal/symmetry"
)

const (
	defaultEnumerateLimit = 20
	maxEnumerateLimit     = 1000

	// Enumeration walks every quadrant mask, so it is bounded well below
	// the grid package's bitmask width.
	maxEnumerateQuadrant = 24
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "symmetry_count", "layout_render").
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

	result, err := s.callTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn("tool failed", logging.String("tool", params.Name), logging.Err(err))
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
	// Counting
	case "symmetry_count":
		return s.handleSymmetryCount(args)
	case "symmetry_partition":
		return s.handleSymmetryPartition(args)

	// Layouts
	case "layout_check":
		return s.handleLayoutCheck(args)
	case "layout_enumerate":
		return s.handleLayoutEnumerate(args)
	case "layout_render":
		return s.handleLayoutRender(args)
	case "layout_decode":
		return s.handleLayoutDecode(args)
	case "layout_crop_quadrant":
		return s.handleLayoutCropQuadrant(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// callTool runs a tool and converts a panic into an error, so one bad call
// cannot take down the server.
func (s *Server) callTool(name string, args json.RawMessage) (result interface{}, err error) {
	return recoverTool(name, func() (interface{}, error) {
		return s.executeTool(name, args)
	})
}

func recoverTool(name string, fn func() (interface{}, error)) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%s: internal error: %v", name, r)
		}
	}()
	return fn()
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

// dimensionArgs is embedded by every tool that takes a grid size. The fields
// are float64 so that 2.5 reaches CheckInteger instead of failing in the
// JSON decoder with a less useful message.
type dimensionArgs struct {
	Rows float64 `json:"rows"`
	Cols float64 `json:"cols"`
}

func (d dimensionArgs) dimensions() (int, int, error) {
	rows, err := symmetry.CheckInteger("rows", d.Rows)
	if err != nil {
		return 0, 0, err
	}
	cols, err := symmetry.CheckInteger("cols", d.Cols)
	if err != nil {
		return 0, 0, err
	}
	if err := symmetry.CheckDimensions(rows, cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// === Counting Handlers ===

type symmetryCountArgs struct {
	dimensionArgs
	Algorithm string `json:"algorithm"`
}

// SymmetryCountResult is the symmetry_count payload.
type SymmetryCountResult struct {
	Algorithm       symmetry.Algorithm `json:"algorithm"`
	Partition       symmetry.Partition `json:"partition"`
	TotalEggs       int                `json:"total_eggs"`
	TotalSymmetries string             `json:"total_symmetries"`
	Distribution    []string           `json:"distribution"`
}

func (s *Server) handleSymmetryCount(args json.RawMessage) (interface{}, error) {
	var a symmetryCountArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rows, cols, err := a.dimensions()
	if err != nil {
		return nil, err
	}
	algo := s.algorithm
	if a.Algorithm != "" {
		if algo, err = symmetry.ParseAlgorithm(a.Algorithm); err != nil {
			return nil, err
		}
	}

	dist, err := symmetry.GetSymmetries(rows, cols, symmetry.WithAlgorithm(algo), symmetry.WithLogger(s.log))
	if err != nil {
		return nil, err
	}
	p := symmetry.Decompose(rows, cols)
	return &SymmetryCountResult{
		Algorithm:       algo,
		Partition:       p,
		TotalEggs:       p.TotalEggs(),
		TotalSymmetries: dist.Sum().String(),
		Distribution:    dist.Strings(),
	}, nil
}

func (s *Server) handleSymmetryPartition(args json.RawMessage) (interface{}, error) {
	var a dimensionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rows, cols, err := a.dimensions()
	if err != nil {
		return nil, err
	}
	p := symmetry.Decompose(rows, cols)
	return map[string]interface{}{
		"partition":        p,
		"summary":          p.String(),
		"total_symmetries": p.TotalSymmetries().String(),
	}, nil
}

// === Layout Handlers ===

type layoutArgs struct {
	dimensionArgs
	Cells []int `json:"cells"`
}

func (a layoutArgs) layout() (grid.Layout, error) {
	rows, cols, err := a.dimensions()
	if err != nil {
		return grid.Layout{}, err
	}
	return grid.FromInts(rows, cols, a.Cells)
}

// LayoutCheckResult reports a layout's symmetry.
type LayoutCheckResult struct {
	Symmetric bool   `json:"symmetric"`
	OnCount   int    `json:"on_count"`
	Grid      string `json:"grid"`
}

func (s *Server) handleLayoutCheck(args json.RawMessage) (interface{}, error) {
	var a layoutArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	l, err := a.layout()
	if err != nil {
		return nil, err
	}
	return &LayoutCheckResult{
		Symmetric: l.IsSymmetric(),
		OnCount:   l.OnCount(),
		Grid:      l.String(),
	}, nil
}

type layoutEnumerateArgs struct {
	dimensionArgs
	On    int `json:"on"`
	Limit int `json:"limit"`
}

// LayoutEnumerateResult lists symmetric layouts for one filled-cell count.
type LayoutEnumerateResult struct {
	On       int      `json:"on"`
	Total    string   `json:"total"`
	Returned int      `json:"returned"`
	Layouts  [][]int  `json:"layouts"`
	Grids    []string `json:"grids"`
}

func (s *Server) handleLayoutEnumerate(args json.RawMessage) (interface{}, error) {
	var a layoutEnumerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rows, cols, err := a.dimensions()
	if err != nil {
		return nil, err
	}
	p := symmetry.Decompose(rows, cols)
	if n := p.EggsInQuadrant(); n > maxEnumerateQuadrant {
		return nil, fmt.Errorf("%dx%d has %d quadrant cells, enumeration supports at most %d",
			rows, cols, n, maxEnumerateQuadrant)
	}
	if a.On < 0 || a.On > p.TotalEggs() {
		return nil, fmt.Errorf("on must be between 0 and %d, got %d", p.TotalEggs(), a.On)
	}
	if a.Limit <= 0 {
		a.Limit = defaultEnumerateLimit
	}
	if a.Limit > maxEnumerateLimit {
		a.Limit = maxEnumerateLimit
	}

	dist, err := symmetry.CountDistribution(p, s.algorithm)
	if err != nil {
		return nil, err
	}

	result := &LayoutEnumerateResult{
		On:      a.On,
		Total:   dist[a.On].String(),
		Layouts: [][]int{},
		Grids:   []string{},
	}
	n, err := grid.Enumerate(rows, cols, a.On, a.Limit, func(l grid.Layout) bool {
		result.Layouts = append(result.Layouts, l.Ints())
		result.Grids = append(result.Grids, l.String())
		return true
	})
	if err != nil {
		return nil, err
	}
	result.Returned = n
	return result, nil
}

type layoutRenderArgs struct {
	layoutArgs
	Output   string `json:"output"`
	Format   string `json:"format"`
	CellSize int    `json:"cell_size"`
}

func (s *Server) handleLayoutRender(args json.RawMessage) (interface{}, error) {
	var a layoutRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	l, err := a.layout()
	if err != nil {
		return nil, err
	}
	format, err := imaging.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = s.cellSize
	}

	res, err := imaging.SaveLayout(l, imaging.SaveOptions{
		Format:   format,
		BaseName: a.Output,
		CellSize: a.CellSize,
		Palette:  s.palette,
	})
	if err != nil {
		return nil, err
	}
	s.cache.Evict(res.Path)
	s.log.Info("layout saved", logging.String("path", res.Path), logging.String("format", string(res.Format)))
	return res, nil
}

type layoutImageArgs struct {
	dimensionArgs
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

// LayoutDecodeResult is a layout read back from an image.
type LayoutDecodeResult struct {
	Cells           []int  `json:"cells"`
	Grid            string `json:"grid"`
	Symmetric       bool   `json:"symmetric"`
	OnCount         int    `json:"on_count"`
	MirrorInvariant bool   `json:"mirror_invariant"`

	// Markers counts connected foreground regions independently of the
	// samples. Consistent is false when it disagrees with the decoded cells,
	// which usually means the rows/cols or palette do not match the image.
	Markers    int  `json:"markers"`
	Consistent bool `json:"consistent"`
}

func (s *Server) handleLayoutDecode(args json.RawMessage) (interface{}, error) {
	var a layoutImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rows, cols, err := a.dimensions()
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	l, err := imaging.DecodeLayout(img, rows, cols, s.palette)
	if err != nil {
		return nil, err
	}
	markers := imaging.FindMarkers(img, s.palette)
	mirror := imaging.IsMirrorInvariant(img)
	s.log.Debug("layout decoded",
		logging.String("path", a.Path),
		logging.Int("markers", len(markers)),
		logging.Bool("mirror_invariant", mirror),
		logging.Int("cached_images", s.cache.Len()),
	)
	return &LayoutDecodeResult{
		Cells:           l.Ints(),
		Grid:            l.String(),
		Symmetric:       l.IsSymmetric(),
		OnCount:         l.OnCount(),
		MirrorInvariant: mirror,
		Markers:         len(markers),
		Consistent:      markersMatch(l, markers, img.Bounds()),
	}, nil
}

// markersMatch reports whether every non-blank decoded cell holds exactly one
// marker and no marker sits in a blank cell.
func markersMatch(l grid.Layout, markers []imaging.Marker, bounds image.Rectangle) bool {
	cell := bounds.Dx() / l.Cols
	seen := make([]bool, len(l.Cells))
	for _, m := range markers {
		c := m.Center().Sub(bounds.Min)
		r, col := c.Y/cell, c.X/cell
		if r < 0 || r >= l.Rows || col < 0 || col >= l.Cols {
			return false
		}
		i := r*l.Cols + col
		if seen[i] || l.Cells[i] == grid.Blank {
			return false
		}
		seen[i] = true
	}
	for i, m := range l.Cells {
		if m != grid.Blank && !seen[i] {
			return false
		}
	}
	return true
}

func (s *Server) handleLayoutCropQuadrant(args json.RawMessage) (interface{}, error) {
	var a layoutImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	rows, cols, err := a.dimensions()
	if err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CropQuadrant(img, rows, cols, a.Scale)
}
