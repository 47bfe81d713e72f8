package packer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"autoPallet/models"
)

func TestOrientations_Count(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    int
	}{
		{name: "all distinct", a: 1, b: 2, c: 3, want: 6},
		{name: "two equal", a: 4, b: 4, c: 7, want: 3},
		{name: "two equal, last pair", a: 7, b: 4, c: 4, want: 3},
		{name: "cube", a: 5, b: 5, c: 5, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Orientations(tt.a, tt.b, tt.c)
			assert.Len(t, got, tt.want)

			seen := map[models.Orientation]bool{}
			for _, o := range got {
				assert.False(t, seen[o], "duplicate orientation %v", o)
				seen[o] = true
			}
		})
	}
}

func TestOrientations_Order(t *testing.T) {
	got := Orientations(1, 2, 3)
	assert.Equal(t, []models.Orientation{
		{Width: 1, Height: 2, Depth: 3},
		{Width: 1, Height: 3, Depth: 2},
		{Width: 2, Height: 1, Depth: 3},
		{Width: 2, Height: 3, Depth: 1},
		{Width: 3, Height: 1, Depth: 2},
		{Width: 3, Height: 2, Depth: 1},
	}, got)

	got = Orientations(1, 1, 2)
	assert.Equal(t, []models.Orientation{
		{Width: 1, Height: 1, Depth: 2},
		{Width: 1, Height: 2, Depth: 1},
		{Width: 2, Height: 1, Depth: 1},
	}, got)
}

func TestPalletOrientations(t *testing.T) {
	got := PalletOrientations(models.Pallet{Width: 84, Height: 96, Depth: 104})
	assert.Len(t, got, 6)
	assert.Equal(t, models.Pallet{Width: 84, Height: 96, Depth: 104}, got[0])
	assert.Equal(t, models.Pallet{Width: 104, Height: 96, Depth: 84}, got[5])
}
