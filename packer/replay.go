package packer

import (
	"fmt"

	"autoPallet/models"
)

// ReplayLayer rebuilds a layer's skyline from its placements in commit order.
// Each box must rest at or in front of the occupied depth under its footprint.
func ReplayLayer(width float64, placements []models.PlacedBox) (*Skyline, error) {
	sky := NewSkyline(width)
	for i, p := range placements {
		if z := sky.MaxDepth(p.X, p.Width); p.Z < z-Epsilon {
			return sky, fmt.Errorf("placement %d (%s) at z=%g under depth %g: %w", i, p.BoxID, p.Z, z, ErrOverlap)
		}
		if err := sky.Commit(p.X, p.Width, p.Z+p.Depth); err != nil {
			return sky, fmt.Errorf("placement %d (%s): %w", i, p.BoxID, err)
		}
	}
	return sky, nil
}

// Verify checks that every placement lies inside the pallet and that no two
// boxes of the same layer overlap.
func Verify(pallet models.Pallet, res models.PackingResult) error {
	byLayer := make(map[float64][]models.PlacedBox, len(res.Layers))
	for i, p := range res.Placements {
		if p.X < -Epsilon || p.Y < -Epsilon || p.Z < -Epsilon ||
			p.X+p.Width > pallet.Width+Epsilon ||
			p.Y+p.Height > pallet.Height+Epsilon ||
			p.Z+p.Depth > pallet.Depth+Epsilon {
			return fmt.Errorf("placement %d (%s): %w", i, p.BoxID, ErrOutOfBounds)
		}
		byLayer[p.Y] = append(byLayer[p.Y], p)
	}

	var count int
	var top float64
	for _, l := range res.Layers {
		if l.Elevation < top-Epsilon {
			return fmt.Errorf("layer at y=%g starts below previous top %g: %w", l.Elevation, top, ErrOverlap)
		}
		top = l.Elevation + l.Height
		boxes := byLayer[l.Elevation]
		for _, p := range boxes {
			if p.Height > l.Height+Epsilon {
				return fmt.Errorf("box %s taller than layer at y=%g: %w", p.BoxID, l.Elevation, ErrOverlap)
			}
		}
		if _, err := ReplayLayer(pallet.Width, boxes); err != nil {
			return fmt.Errorf("layer at y=%g: %w", l.Elevation, err)
		}
		count += len(boxes)
	}
	if count != len(res.Placements) {
		return fmt.Errorf("%d placements outside any layer: %w", len(res.Placements)-count, ErrOverlap)
	}
	return nil
}
