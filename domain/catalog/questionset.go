package catalog

import (
	"sort"

	"lightscore/domain/assessment"
)

// The weekly tracking subset samples 43 ray items from the full bank with a
// fixed per-ray quota. Selection is a pure function of the bank contents,
// so every weekly run sees the identical assigned list.

// pickSpread selects n items at evenly spaced positions across src,
// preserving source order. n > len(src) returns all of src.
func pickSpread(src []Question, n int) []Question {
	if n >= len(src) {
		out := make([]Question, len(src))
		copy(out, src)
		return out
	}
	out := make([]Question, 0, n)
	step := float64(len(src)) / float64(n)
	for i := 0; i < n; i++ {
		idx := int(float64(i)*step + step/2)
		if idx >= len(src) {
			idx = len(src) - 1
		}
		out = append(out, src[idx])
	}
	return out
}

// buildWeeklySet draws each ray's quota from its twelve bank items. Every
// ray keeps at least one reverse-keyed item and at least one load item so
// the short form still measures both sides of the capacity.
func buildWeeklySet(bank *Bank) []Question {
	byRay := make(map[string][]Question, RayCount)
	for _, q := range bank.Questions {
		if q.RayID != "" {
			byRay[q.RayID] = append(byRay[q.RayID], q)
		}
	}

	selected := make([]Question, 0, WeeklyItemCount)
	for _, rayID := range RayIDs {
		items := byRay[rayID]
		target := weeklyRayTargets[rayID]

		var reverse, load, normal []Question
		for _, q := range items {
			switch {
			case q.Polarity == assessment.PolarityReverse:
				reverse = append(reverse, q)
			case q.Orientation == OrientationLoad:
				load = append(load, q)
			default:
				normal = append(normal, q)
			}
		}

		picked := make([]Question, 0, target)
		picked = append(picked, pickSpread(reverse, 1)...)
		picked = append(picked, pickSpread(load, 2)...)
		picked = append(picked, pickSpread(normal, target-len(picked))...)
		selected = append(selected, picked...)
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].ID < selected[j].ID
	})
	return selected
}
