package engine

import "math"

// ScoreWeights weights the three layout metrics in the composite score.
// Arbitrary positive weights are accepted and rescaled to sum to one.
type ScoreWeights struct {
	Utilization float64 `json:"utilization"`
	Cropping    float64 `json:"cropping"`
	Balance     float64 `json:"balance"`
}

// DefaultScoreWeights favors page coverage and low cropping over size
// uniformity.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Utilization: 0.4, Cropping: 0.4, Balance: 0.2}
}

func (w ScoreWeights) normalized() ScoreWeights {
	sum := w.Utilization + w.Cropping + w.Balance
	if sum <= 0 {
		return DefaultScoreWeights()
	}
	return ScoreWeights{
		Utilization: w.Utilization / sum,
		Cropping:    w.Cropping / sum,
		Balance:     w.Balance / sum,
	}
}

// scoreCandidate fills in the candidate's metrics and composite score.
// Cropping is a penalty, so it enters the score inverted.
func scoreCandidate(c *Candidate, page PageSize, w ScoreWeights) {
	m := Metrics{
		Utilization:  utilization(c.Cells, page),
		CroppingRate: croppingRate(c.Cells),
		SizeBalance:  sizeBalance(c.Cells),
	}
	c.Metrics = m
	c.Score = w.Utilization*m.Utilization + w.Cropping*(1-m.CroppingRate) + w.Balance*m.SizeBalance
}

// utilization is the fraction of the page covered by cells, capped at 1 so
// overlapping or oversized layouts cannot inflate their score.
func utilization(cells []Cell, page PageSize) float64 {
	pageArea := page.Width * page.Height
	if pageArea <= 0 {
		return 0
	}
	total := 0.0
	for _, c := range cells {
		total += c.Area()
	}
	return math.Min(1, total/pageArea)
}

// croppingRate is the mean fraction of photo content lost across photo-bound
// cells when each photo is scaled to cover its cell. Cells without a photo
// are skipped; a candidate with no bound cells crops nothing.
func croppingRate(cells []Cell) float64 {
	sum := 0.0
	count := 0
	for _, c := range cells {
		if c.Photo == nil {
			continue
		}
		sum += cropFraction(c)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// cropFraction computes the overflow of a cover-scaled photo against its
// cell. The photo is scaled uniformly until both cell dimensions are filled;
// whatever sticks out on the longer axis is cropped away.
func cropFraction(c Cell) float64 {
	cellRatio := c.AspectRatio()
	photoRatio := c.Photo.AspectRatio()
	if cellRatio <= 0 || photoRatio <= 0 {
		return 0
	}
	var rate float64
	if cellRatio > photoRatio {
		// Cell is relatively wider, photo fills the width and overflows
		// vertically.
		scaledHeight := c.Width / photoRatio
		rate = (scaledHeight - c.Height) / scaledHeight
	} else {
		scaledWidth := c.Height * photoRatio
		rate = (scaledWidth - c.Width) / scaledWidth
	}
	return clamp01(rate)
}

// sizeBalance is one minus the clamped coefficient of variation of cell
// areas. Equal-area layouts score 1; heavily skewed layouts approach 0.
func sizeBalance(cells []Cell) float64 {
	if len(cells) == 0 {
		return 0
	}
	mean := 0.0
	for _, c := range cells {
		mean += c.Area()
	}
	mean /= float64(len(cells))
	if mean <= 0 {
		return 0
	}
	variance := 0.0
	for _, c := range cells {
		d := c.Area() - mean
		variance += d * d
	}
	variance /= float64(len(cells))
	cv := math.Sqrt(variance) / mean
	return 1 - math.Min(1, cv)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
