// Package engine turns a photo set and a page size into ranked collage
// layout candidates. It enumerates layout descriptors, instantiates each of
// them twice (sequential and aspect-optimized photo assignment), collapses
// structural duplicates, scores the survivors and returns them sorted by
// score.
package engine

import (
	"sort"

	"github.com/kozaktomas/photo-collage/internal/templates"
)

// Options tunes a single engine instance. The zero value is usable; every
// field falls back to its default.
type Options struct {
	Weights         ScoreWeights
	StrictPrecision int
	SplitRatio      float64
}

// DefaultOptions returns the configuration used when nothing is overridden.
func DefaultOptions() Options {
	return Options{
		Weights:         DefaultScoreWeights(),
		StrictPrecision: DefaultStrictPrecision,
		SplitRatio:      0.5,
	}
}

// Engine generates, deduplicates, scores and ranks layout candidates. It is
// stateless after construction and safe for concurrent use.
type Engine struct {
	opts Options
}

// New builds an engine, sanitizing the options: zero weights fall back to the
// defaults, positive weights are rescaled to sum to one, out-of-range
// precision and split ratio revert to their defaults.
func New(opts Options) *Engine {
	if opts.Weights == (ScoreWeights{}) {
		opts.Weights = DefaultScoreWeights()
	}
	opts.Weights = opts.Weights.normalized()
	if opts.StrictPrecision <= 0 {
		opts.StrictPrecision = DefaultStrictPrecision
	}
	if opts.SplitRatio <= 0 || opts.SplitRatio >= 1 {
		opts.SplitRatio = 0.5
	}
	return &Engine{opts: opts}
}

// Result carries the ranked candidates plus bookkeeping counters for the
// pipeline stages that discarded something.
type Result struct {
	Candidates []Candidate `json:"candidates"`
	Generated  int         `json:"generated"`  // instantiated before deduplication
	Duplicates int         `json:"duplicates"` // dropped as structural duplicates
	Invalid    int         `json:"invalid"`    // excluded from scoring
}

// Generate runs the full pipeline: enumerate, instantiate, deduplicate
// strictly, score and rank. Empty photo sets and non-positive pages yield an
// empty result, never an error.
func (e *Engine) Generate(photos []Photo, page PageSize) Result {
	if len(photos) == 0 || page.Width <= 0 || page.Height <= 0 {
		return Result{}
	}
	ordered := sortByOrientation(photos)
	cands := e.instantiateAll(ordered, page)
	generated := len(cands)
	kept, dropped := DeduplicateStrict(cands, page, e.opts.StrictPrecision)
	scored, invalid := e.scoreAll(kept, page)
	rank(scored)
	return Result{
		Candidates: scored,
		Generated:  generated,
		Duplicates: dropped,
		Invalid:    invalid,
	}
}

// GenerateLayouts is the plain form of Generate for callers that only want
// the ranked candidates.
func (e *Engine) GenerateLayouts(photos []Photo, page PageSize) []Candidate {
	return e.Generate(photos, page).Candidates
}

// GenerateGrouped skips strict deduplication and instead annotates the ranked
// output: every candidate sharing a grouping signature with an earlier one
// carries DuplicateOf pointing at the canonical candidate's index in the
// returned slice.
func (e *Engine) GenerateGrouped(photos []Photo, page PageSize) []Candidate {
	if len(photos) == 0 || page.Width <= 0 || page.Height <= 0 {
		return nil
	}
	ordered := sortByOrientation(photos)
	cands := e.instantiateAll(ordered, page)
	scored, _ := e.scoreAll(cands, page)
	rank(scored)
	return AnnotateDuplicates(scored, page)
}

// instantiateAll produces both assignment variants for every descriptor.
// Single-cell descriptors skip the optimized variant, it could only repeat
// the sequential one.
func (e *Engine) instantiateAll(photos []Photo, page PageSize) []Candidate {
	descs := templates.Enumerate(len(photos), templates.Params{SplitRatio: e.opts.SplitRatio})
	cands := make([]Candidate, 0, 2*len(descs))
	for _, d := range descs {
		cands = append(cands, instantiate(d, page, photos))
		if len(d.Cells) > 1 {
			cands = append(cands, instantiateOptimized(d, page, photos))
		}
	}
	return cands
}

func (e *Engine) scoreAll(cands []Candidate, page PageSize) ([]Candidate, int) {
	scored := make([]Candidate, 0, len(cands))
	invalid := 0
	for _, c := range cands {
		if !c.valid() {
			invalid++
			continue
		}
		scoreCandidate(&c, page, e.opts.Weights)
		scored = append(scored, c)
	}
	return scored, invalid
}

// rank sorts by score descending. The sort is stable so candidates with
// equal scores keep their generation order and output stays deterministic.
func rank(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
}
