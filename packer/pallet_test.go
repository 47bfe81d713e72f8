package packer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoPallet/models"
)

func TestPackCandidate_CubesFillPallet(t *testing.T) {
	pallet := models.Pallet{Width: 10, Height: 10, Depth: 10}
	boxes := []models.BoxType{{ID: "C", Width: 5, Height: 5, Depth: 5, Qty: 8}}

	res, err := PackCandidate(boxes, pallet, 5)
	require.NoError(t, err)

	var want []models.PlacedBox
	for _, y := range []float64{0, 5} {
		for _, xz := range [][2]float64{{0, 0}, {0, 5}, {5, 0}, {5, 5}} {
			want = append(want, models.PlacedBox{BoxID: "C", Width: 5, Height: 5, Depth: 5, X: xz[0], Y: y, Z: xz[1]})
		}
	}
	assert.Equal(t, want, res.Placements)
	assert.Equal(t, []models.LayerStats{
		{Elevation: 0, Height: 5, Count: 4},
		{Elevation: 5, Height: 5, Count: 4},
	}, res.Layers)
	assert.Equal(t, 1.0, res.Utilization)
	assert.Equal(t, 0, res.Remaining[0].Qty)
	assert.NoError(t, Verify(pallet, res))
}

func TestPackCandidate_AdvancesByTallestBox(t *testing.T) {
	boxes := scenarioBoxes(100)

	res, err := PackCandidate(boxes, scenarioPallet, 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Layers), 2)

	// 24 flat boxes plus four standing ones on top of the full columns
	assert.Equal(t, models.LayerStats{Elevation: 0, Height: 15, Count: 28}, res.Layers[0])
	for i := 1; i < len(res.Layers); i++ {
		prev := res.Layers[i-1]
		assert.Equal(t, prev.Elevation+prev.Height, res.Layers[i].Elevation)
	}

	assert.Equal(t, 100, res.Remaining[0].Qty+len(res.Placements))
	assert.Greater(t, res.Utilization, 0.0)
	assert.LessOrEqual(t, res.Utilization, 1.0)
	assert.NoError(t, Verify(scenarioPallet, res))
}

func TestPackCandidate_DecimalWidthsFillPallet(t *testing.T) {
	pallet := models.Pallet{Width: 0.3, Height: 0.1, Depth: 0.1}
	boxes := []models.BoxType{
		{ID: "A", Width: 0.1, Height: 0.1, Depth: 0.1, Qty: 1},
		{ID: "B", Width: 0.2, Height: 0.1, Depth: 0.1, Qty: 1},
	}

	res, err := PackCandidate(boxes, pallet, 0.1)
	require.NoError(t, err)
	require.Len(t, res.Placements, 2)
	assert.Equal(t, "B", res.Placements[0].BoxID)
	assert.Equal(t, "A", res.Placements[1].BoxID)
	assert.Equal(t, 0.2, res.Placements[1].X)
	assert.InDelta(t, 1.0, res.Utilization, 1e-9)
	assert.NoError(t, Verify(pallet, res))
}

func TestPickBest(t *testing.T) {
	results := []models.PackingResult{{Utilization: 0.2}, {Utilization: 0.5}, {Utilization: 0.5}, {Utilization: 0.1}}
	assert.Equal(t, 1, pickBest(results))
	assert.Equal(t, -1, pickBest(nil))
}

func TestPackPallet_TieKeepsEarlierCandidate(t *testing.T) {
	pallet := models.Pallet{Width: 10, Height: 10, Depth: 10}
	boxes := []models.BoxType{{ID: "C", Width: 5, Height: 5, Depth: 5, Qty: 8}}
	// a 3-high layer still takes the 5-high cubes and advances by 5
	cands := []models.LayerCandidate{{Height: 3}, {Height: 5}}

	res, err := PackPallet(boxes, pallet, cands)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.LayerHeight)
	assert.Equal(t, 1.0, res.Utilization)
	assert.Len(t, res.Placements, 8)
	assert.Equal(t, 8, boxes[0].Qty)
}

func TestPackPallet_NoCandidates(t *testing.T) {
	boxes := scenarioBoxes(3)

	res, err := PackPallet(boxes, scenarioPallet, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Placements)
	assert.Equal(t, 0.0, res.Utilization)
	assert.Equal(t, boxes, res.Remaining)
}
