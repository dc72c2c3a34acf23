package layout

import (
	"math"

	"github.com/ttgt/schedparse/model"
)

// EstimateRowBoundary computes the y-interval of the row anchored at ys[target].
//
// ys must be sorted ascending and hold one anchor y per row. Row heights are
// not uniform, so the boundary is extrapolated from the tightest pair of
// neighbouring anchors: their midpoint is reflected across each anchor on the
// way to the target, and the target's far edge is mirrored around the target y.
//
// With fewer than three anchors the estimate degenerates: two anchors give the
// target y plus or minus half their gap, one anchor gives a zero-height row.
// An empty slice or an out-of-range target yields a zero boundary and false.
func EstimateRowBoundary(ys []float64, target int) (model.RowBoundary, bool) {
	if len(ys) == 0 || target < 0 || target >= len(ys) {
		return model.RowBoundary{}, false
	}

	if len(ys) < 3 {
		if len(ys) == 2 {
			diff := math.Abs(ys[1]-ys[0]) / 2
			return model.RowBoundary{Upper: ys[target] - diff, Lower: ys[target] + diff}, true
		}
		return model.RowBoundary{Upper: ys[0], Lower: ys[0]}, true
	}

	base := tightestPair(ys)
	baseBoundary := (ys[base] + ys[base+1]) / 2
	targetY := ys[target]

	switch {
	case targetY < baseBoundary:
		b := baseBoundary
		for i := base + 1; i > target; i-- {
			gap := math.Abs(b - ys[i-1])
			b = ys[i-1] - gap
		}
		return model.RowBoundary{Upper: b, Lower: targetY + (targetY - b)}, true

	case targetY > baseBoundary:
		b := baseBoundary
		for i := base; i < target; i++ {
			gap := math.Abs(ys[i+1] - b)
			b = ys[i+1] + gap
		}
		return model.RowBoundary{Upper: targetY - (b - targetY), Lower: b}, true

	default:
		return model.RowBoundary{Upper: baseBoundary, Lower: baseBoundary}, true
	}
}

// tightestPair returns i such that ys[i+1]-ys[i] is the smallest gap.
// Ties go to the first pair.
func tightestPair(ys []float64) int {
	minGap := math.Inf(1)
	base := 0
	for i := 0; i < len(ys)-1; i++ {
		if gap := ys[i+1] - ys[i]; gap < minGap {
			minGap = gap
			base = i
		}
	}
	return base
}

// ItemsWithin returns the items whose rounded y lies inside the boundary.
func ItemsWithin(items []model.Item, b model.RowBoundary) []model.Item {
	var out []model.Item
	for _, it := range items {
		if b.Contains(it.Y) {
			out = append(out, it)
		}
	}
	return out
}
