package handlers

import (
	"net/http"
	"strconv"

	"github.com/kozaktomas/photo-collage/internal/config"
	"github.com/kozaktomas/photo-collage/internal/templates"
)

// TemplatesHandler exposes the descriptor library for inspection.
type TemplatesHandler struct {
	config *config.Config
}

// NewTemplatesHandler creates a templates handler.
func NewTemplatesHandler(cfg *config.Config) *TemplatesHandler {
	return &TemplatesHandler{config: cfg}
}

type templateCellResponse struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	PhotoIndex int     `json:"photo_index"`
}

type templateResponse struct {
	Kind  string                 `json:"kind"`
	Name  string                 `json:"name"`
	Cells []templateCellResponse `json:"cells"`
}

type templatesResponse struct {
	Count     int                `json:"count"`
	Templates []templateResponse `json:"templates"`
}

// List handles GET /api/v1/templates?count=N.
func (h *TemplatesHandler) List(w http.ResponseWriter, r *http.Request) {
	countParam := r.URL.Query().Get("count")
	if countParam == "" {
		respondError(w, http.StatusBadRequest, "count query parameter is required")
		return
	}
	count, err := strconv.Atoi(countParam)
	if err != nil || count <= 0 {
		respondError(w, http.StatusBadRequest, "count must be a positive integer")
		return
	}

	params := templates.Params{SplitRatio: h.config.Engine.SplitRatio}
	descs := templates.Enumerate(count, params)

	resp := templatesResponse{
		Count:     count,
		Templates: make([]templateResponse, 0, len(descs)),
	}
	for _, d := range descs {
		tr := templateResponse{
			Kind:  string(d.Kind),
			Name:  d.Name,
			Cells: make([]templateCellResponse, 0, len(d.Cells)),
		}
		for _, c := range d.Cells {
			tr.Cells = append(tr.Cells, templateCellResponse{
				X:          c.Rect.X,
				Y:          c.Rect.Y,
				Width:      c.Rect.Width,
				Height:     c.Rect.Height,
				PhotoIndex: c.PhotoIndex,
			})
		}
		resp.Templates = append(resp.Templates, tr)
	}

	respondJSON(w, http.StatusOK, resp)
}
