package schedule

import (
	"sort"

	"glowbook/models"
)

// Interval arithmetic on minute-offset ranges within a day. All functions
// are pure: inputs are never mutated and output slices are freshly allocated.

// Intersect emits the pairwise intersections of a and b. Results are not
// merged; callers that need canonical form run Merge afterwards.
func Intersect(a, b []models.Interval) []models.Interval {
	var out []models.Interval
	for _, x := range a {
		for _, y := range b {
			start := x.Start
			if y.Start > start {
				start = y.Start
			}
			end := x.End
			if y.End < end {
				end = y.End
			}
			if start < end {
				out = append(out, models.Interval{Start: start, End: end})
			}
		}
	}
	return out
}

// Subtract carves every busy interval out of every free interval. A cut can
// leave zero, one, or two remainders per free interval. The order of busy
// does not affect the result.
func Subtract(free, busy []models.Interval) []models.Interval {
	remaining := make([]models.Interval, 0, len(free))
	for _, f := range free {
		if !f.Empty() {
			remaining = append(remaining, f)
		}
	}

	for _, b := range busy {
		if b.Empty() {
			continue
		}
		next := make([]models.Interval, 0, len(remaining))
		for _, f := range remaining {
			if !f.Overlaps(b) {
				next = append(next, f)
				continue
			}
			if f.Start < b.Start {
				next = append(next, models.Interval{Start: f.Start, End: b.Start})
			}
			if b.End < f.End {
				next = append(next, models.Interval{Start: b.End, End: f.End})
			}
		}
		remaining = next
	}
	return remaining
}

// Merge sorts intervals by start and coalesces touching or overlapping
// neighbours into one.
func Merge(intervals []models.Interval) []models.Interval {
	var in []models.Interval
	for _, iv := range intervals {
		if !iv.Empty() {
			in = append(in, iv)
		}
	}
	if len(in) == 0 {
		return nil
	}

	sort.Slice(in, func(i, j int) bool { return in[i].Start < in[j].Start })

	out := []models.Interval{in[0]}
	for _, iv := range in[1:] {
		last := &out[len(out)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}
