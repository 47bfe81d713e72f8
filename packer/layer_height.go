package packer

import (
	"math"
	"sort"

	"autoPallet/models"
)

// closestDistance 返回箱子三个边长中与 h 最接近的差值
func closestDistance(b models.BoxType, h float64) float64 {
	return math.Min(math.Abs(b.Width-h), math.Min(math.Abs(b.Height-h), math.Abs(b.Depth-h)))
}

// PlanLayerHeights proposes every box dimension that fits under maxHeight as a
// layer height, scored by the summed closest-dimension distance of the whole
// catalog. Lower scores come first; equal scores keep first-seen order.
func PlanLayerHeights(boxes []models.BoxType, maxHeight float64) []models.LayerCandidate {
	index := make(map[float64]int)
	var out []models.LayerCandidate

	for _, b := range boxes {
		for _, h := range [3]float64{b.Width, b.Height, b.Depth} {
			if h > maxHeight {
				continue
			}
			var score float64
			for _, other := range boxes {
				score += closestDistance(other, h)
			}
			if i, ok := index[h]; ok {
				out[i].Score = score
				continue
			}
			index[h] = len(out)
			out = append(out, models.LayerCandidate{Height: h, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	return out
}
