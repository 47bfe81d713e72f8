package packer

import (
	"math"

	"autoPallet/models"
)

const (
	// added when a box would stand taller than the target layer height
	overHeightPenalty = 100000
	widthWeight       = 100
)

type candidate struct {
	box         int
	orientation models.Orientation
	gap         Gap
	score       float64
}

// fitScore ranks a box orientation against a gap: fitting under the layer
// height dominates, then width match, then depth match.
func fitScore(o models.Orientation, gapWidth, gapDepth, target float64) float64 {
	penalty := math.Abs(o.Height - target)
	if o.Height > target {
		penalty += overHeightPenalty
	}
	return penalty + widthWeight*math.Abs(o.Width-gapWidth) + math.Abs(o.Depth-gapDepth)
}

// bestCandidate scans gaps left to right, box types in catalog order and
// orientations in enumeration order, keeping the first strictly lowest score.
// It is the only best-box selection routine in the package.
func bestCandidate(boxes []models.BoxType, orientations [][]models.Orientation, gaps []Gap, pallet models.Pallet, target, elevation float64) (candidate, bool) {
	best := candidate{score: math.MaxFloat64}

	for _, g := range gaps {
		avail := pallet.Depth - g.Z
		for i, b := range boxes {
			if b.Qty <= 0 {
				continue
			}
			for _, o := range orientations[i] {
				if o.Width > g.Width+Epsilon || o.Depth > avail+Epsilon || elevation+o.Height > pallet.Height+Epsilon {
					continue
				}
				score := fitScore(o, g.Width, avail, target)
				if score < best.score {
					best = candidate{box: i, orientation: o, gap: g, score: score}
				}
			}
		}
	}

	if best.score == math.MaxFloat64 {
		return candidate{}, false
	}
	return best, true
}

// PackLayer fills one layer starting at elevation and returns its placements
// together with the decremented copy of boxes. An empty result means nothing
// fits any more.
func PackLayer(boxes []models.BoxType, pallet models.Pallet, target, elevation float64) ([]models.PlacedBox, []models.BoxType, error) {
	placed, catalog, _, err := packLayer(boxes, pallet, target, elevation)
	return placed, catalog, err
}

func packLayer(boxes []models.BoxType, pallet models.Pallet, target, elevation float64) ([]models.PlacedBox, []models.BoxType, *Skyline, error) {
	catalog := models.CopyCatalog(boxes)
	orientations := make([][]models.Orientation, len(catalog))
	for i, b := range catalog {
		orientations[i] = BoxOrientations(b)
	}

	sky := NewSkyline(pallet.Width)
	var placed []models.PlacedBox
	for {
		c, ok := bestCandidate(catalog, orientations, sky.Gaps(), pallet, target, elevation)
		if !ok {
			break
		}
		o := c.orientation
		if err := sky.Commit(c.gap.X, o.Width, c.gap.Z+o.Depth); err != nil {
			return placed, catalog, sky, err
		}
		catalog[c.box].Qty--
		placed = append(placed, models.PlacedBox{
			BoxID:  catalog[c.box].ID,
			Width:  o.Width,
			Height: o.Height,
			Depth:  o.Depth,
			X:      c.gap.X,
			Y:      elevation,
			Z:      c.gap.Z,
		})
	}
	return placed, catalog, sky, nil
}
