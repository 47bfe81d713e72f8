package packer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autoPallet/models"
)

func TestPlanLayerHeights_SingleBox(t *testing.T) {
	boxes := []models.BoxType{{ID: "A", Width: 20, Height: 10, Depth: 15, Qty: 10}}

	got := PlanLayerHeights(boxes, 96)
	assert.Equal(t, []models.LayerCandidate{
		{Height: 20, Score: 0},
		{Height: 10, Score: 0},
		{Height: 15, Score: 0},
	}, got)
}

func TestPlanLayerHeights_RankedByScore(t *testing.T) {
	boxes := []models.BoxType{
		{ID: "A", Width: 20, Height: 10, Depth: 15, Qty: 1},
		{ID: "B", Width: 10, Height: 10, Depth: 10, Qty: 1},
	}

	got := PlanLayerHeights(boxes, 96)
	assert.Equal(t, []models.LayerCandidate{
		{Height: 10, Score: 0},
		{Height: 15, Score: 5},
		{Height: 20, Score: 10},
	}, got)
}

func TestPlanLayerHeights_BoundedByPalletHeight(t *testing.T) {
	boxes := []models.BoxType{
		{ID: "A", Width: 20, Height: 10, Depth: 15, Qty: 1},
		{ID: "B", Width: 10, Height: 10, Depth: 10, Qty: 1},
	}

	got := PlanLayerHeights(boxes, 12)
	assert.Equal(t, []models.LayerCandidate{{Height: 10, Score: 0}}, got)

	assert.Empty(t, PlanLayerHeights(boxes, 9))
	assert.Empty(t, PlanLayerHeights(nil, 100))
}
