package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kozaktomas/photo-collage/internal/config"
	"github.com/kozaktomas/photo-collage/internal/engine"
)

// LayoutsHandler generates ranked collage layouts for a photo set.
type LayoutsHandler struct {
	config *config.Config
	engine *engine.Engine
}

// NewLayoutsHandler creates a layouts handler with an engine configured from
// the application config.
func NewLayoutsHandler(cfg *config.Config) *LayoutsHandler {
	return &LayoutsHandler{
		config: cfg,
		engine: engine.New(engine.Options{
			Weights: engine.ScoreWeights{
				Utilization: cfg.Engine.UtilizationWeight,
				Cropping:    cfg.Engine.CroppingWeight,
				Balance:     cfg.Engine.BalanceWeight,
			},
			StrictPrecision: cfg.Engine.StrictPrecision,
			SplitRatio:      cfg.Engine.SplitRatio,
		}),
	}
}

type layoutsRequest struct {
	Photos  []engine.Photo   `json:"photos"`
	Page    *engine.PageSize `json:"page,omitempty"`
	Grouped bool             `json:"grouped,omitempty"`
	Top     int              `json:"top,omitempty"`
}

type cellResponse struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	PhotoID string  `json:"photo_id,omitempty"`
}

type candidateResponse struct {
	Kind        string           `json:"kind"`
	Name        string           `json:"name"`
	Cells       []cellResponse   `json:"cells"`
	Score       float64          `json:"score"`
	Metrics     engine.Metrics   `json:"metrics"`
	DuplicateOf *int             `json:"duplicate_of,omitempty"`
	Warnings    []engine.Warning `json:"warnings,omitempty"`
}

type layoutsResponse struct {
	Candidates []candidateResponse `json:"candidates"`
	Generated  int                 `json:"generated"`
	Duplicates int                 `json:"duplicates"`
	Invalid    int                 `json:"invalid"`
}

// Generate handles POST /api/v1/layouts.
func (h *LayoutsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req layoutsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if len(req.Photos) == 0 {
		respondError(w, http.StatusBadRequest, "photos must not be empty")
		return
	}
	for _, p := range req.Photos {
		if p.Width <= 0 || p.Height <= 0 {
			respondError(w, http.StatusBadRequest, "photo dimensions must be positive")
			return
		}
	}

	page := engine.PageSize{Width: h.config.Page.Width, Height: h.config.Page.Height}
	if req.Page != nil {
		if req.Page.Width <= 0 || req.Page.Height <= 0 {
			respondError(w, http.StatusBadRequest, "page dimensions must be positive")
			return
		}
		page = *req.Page
	}

	resp := layoutsResponse{Candidates: []candidateResponse{}}
	if req.Grouped {
		cands := h.engine.GenerateGrouped(req.Photos, page)
		resp.Generated = len(cands)
		resp.Candidates = toCandidateResponses(cands, page, true)
	} else {
		result := h.engine.Generate(req.Photos, page)
		resp.Generated = result.Generated
		resp.Duplicates = result.Duplicates
		resp.Invalid = result.Invalid
		resp.Candidates = toCandidateResponses(result.Candidates, page, false)
	}

	if req.Top > 0 && req.Top < len(resp.Candidates) {
		resp.Candidates = resp.Candidates[:req.Top]
	}

	respondJSON(w, http.StatusOK, resp)
}

func toCandidateResponses(cands []engine.Candidate, page engine.PageSize, grouped bool) []candidateResponse {
	out := make([]candidateResponse, 0, len(cands))
	for _, c := range cands {
		cr := candidateResponse{
			Kind:     string(c.Kind),
			Name:     c.Name,
			Score:    c.Score,
			Metrics:  c.Metrics,
			Cells:    make([]cellResponse, 0, len(c.Cells)),
			Warnings: engine.ValidateCandidate(c, page),
		}
		for _, cell := range c.Cells {
			resp := cellResponse{
				X:      cell.X,
				Y:      cell.Y,
				Width:  cell.Width,
				Height: cell.Height,
			}
			if cell.Photo != nil {
				resp.PhotoID = cell.Photo.ID
			}
			cr.Cells = append(cr.Cells, resp)
		}
		if grouped && c.DuplicateOf >= 0 {
			idx := c.DuplicateOf
			cr.DuplicateOf = &idx
		}
		out = append(out, cr)
	}
	return out
}
