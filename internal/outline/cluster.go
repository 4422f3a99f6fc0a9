package outline

import (
	"fmt"
	"sort"
)

// DefaultSizeTolerance is the maximum absolute difference between a font
// size and its group's anchor for the two to share a heading tier.
const DefaultSizeTolerance = 0.5

// maxHeadingLevels caps the outline depth: only the first four size groups
// receive heading levels.
const maxHeadingLevels = 4

// defaultAverageSize is the degenerate average used when a document has no
// spans; downstream logic short-circuits on empty input before it matters.
const defaultAverageSize = 12.0

// GroupSizes partitions the distinct font sizes seen in a document into
// SizeGroups ordered descending by anchor. Sizes are expected pre-rounded
// to one decimal place. Walking the sizes largest-first, a size joins the
// current group while its absolute distance from the group's first-inserted
// member stays within tolerance; otherwise it anchors a new group.
func GroupSizes(sizes []float64, tolerance float64) []SizeGroup {
	distinct := make(map[float64]struct{}, len(sizes))
	for _, s := range sizes {
		distinct[s] = struct{}{}
	}

	sorted := make([]float64, 0, len(distinct))
	for s := range distinct {
		sorted = append(sorted, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var groups []SizeGroup
	for _, size := range sorted {
		if len(groups) == 0 || groups[len(groups)-1].Anchor()-size > tolerance {
			groups = append(groups, SizeGroup{Sizes: []float64{size}})
			continue
		}
		last := &groups[len(groups)-1]
		last.Sizes = append(last.Sizes, size)
	}

	return groups
}

// AssignLevels builds the LevelMap from ordered size groups: the largest
// group maps to H1, the next three to H2..H4. Sizes in any later group are
// absent from the map and never become headings.
func AssignLevels(groups []SizeGroup) LevelMap {
	levels := make(LevelMap)

	for i, group := range groups {
		if i >= maxHeadingLevels {
			break
		}
		label := fmt.Sprintf("H%d", i+1)
		for _, size := range group.Sizes {
			levels[size] = label
		}
	}

	return levels
}

// AverageSize computes the arithmetic mean of every span's font size.
func AverageSize(spans []Span) float64 {
	if len(spans) == 0 {
		return defaultAverageSize
	}

	var total float64
	for _, span := range spans {
		total += span.Size
	}
	return total / float64(len(spans))
}
