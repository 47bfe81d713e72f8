package packer

import (
	"context"
	"math"

	"autoPallet/models"
)

// PackCandidate stacks layers of the given nominal height from the pallet
// floor upward. Each layer advances the cursor by the tallest box it actually
// holds, and stacking ends at the first empty layer.
func PackCandidate(boxes []models.BoxType, pallet models.Pallet, layerHeight float64) (models.PackingResult, error) {
	catalog := models.CopyCatalog(boxes)
	res := models.PackingResult{LayerHeight: layerHeight}

	var y float64
	for y < pallet.Height-Epsilon {
		h := math.Min(layerHeight, pallet.Height-y)
		if h <= Epsilon {
			break
		}
		placed, next, err := PackLayer(catalog, pallet, h, y)
		if err != nil {
			return res, err
		}
		if len(placed) == 0 {
			break
		}
		catalog = next

		var top float64
		for _, p := range placed {
			top = max(top, p.Height)
			res.UsedVolume += p.Volume()
		}
		res.Placements = append(res.Placements, placed...)
		res.Layers = append(res.Layers, models.LayerStats{Elevation: y, Height: top, Count: len(placed)})
		y += top
	}

	res.Remaining = catalog
	res.Utilization = res.UsedVolume / pallet.Volume()
	return res, nil
}

// packAttempts runs every candidate height independently, each from the
// untouched catalog.
func packAttempts(ctx context.Context, boxes []models.BoxType, pallet models.Pallet, candidates []models.LayerCandidate) ([]models.PackingResult, error) {
	results := make([]models.PackingResult, 0, len(candidates))
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := PackCandidate(boxes, pallet, c.Height)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// pickBest returns the index of the highest utilization, first one on ties,
// or -1 for an empty slice.
func pickBest(results []models.PackingResult) int {
	best := -1
	for i, r := range results {
		if best < 0 || r.Utilization > results[best].Utilization {
			best = i
		}
	}
	return best
}

func emptyResult(boxes []models.BoxType) models.PackingResult {
	return models.PackingResult{Remaining: models.CopyCatalog(boxes)}
}

// PackPallet tries every layer candidate and keeps the best utilization for
// this pallet orientation.
func PackPallet(boxes []models.BoxType, pallet models.Pallet, candidates []models.LayerCandidate) (models.PackingResult, error) {
	results, err := packAttempts(context.Background(), boxes, pallet, candidates)
	if err != nil {
		return models.PackingResult{}, err
	}
	if i := pickBest(results); i >= 0 {
		return results[i], nil
	}
	return emptyResult(boxes), nil
}
