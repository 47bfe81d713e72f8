package packer

import "autoPallet/models"

func perm3(a, b, c float64) [6][3]float64 {
	return [6][3]float64{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}
}

// Orientations returns the distinct axis-aligned permutations of (a, b, c) in
// enumeration order. Cubes yield one orientation, two equal sides yield three.
func Orientations(a, b, c float64) []models.Orientation {
	seen := make(map[[3]float64]struct{}, 6)
	out := make([]models.Orientation, 0, 6)
	for _, p := range perm3(a, b, c) {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, models.Orientation{Width: p[0], Height: p[1], Depth: p[2]})
	}
	return out
}

// BoxOrientations is Orientations over a box type's own dimensions.
func BoxOrientations(b models.BoxType) []models.Orientation {
	return Orientations(b.Width, b.Height, b.Depth)
}

// PalletOrientations is Orientations over a pallet's dimensions.
func PalletOrientations(p models.Pallet) []models.Pallet {
	ors := Orientations(p.Width, p.Height, p.Depth)
	out := make([]models.Pallet, len(ors))
	for i, o := range ors {
		out[i] = o.Pallet()
	}
	return out
}
