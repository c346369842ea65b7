package dashboard

import (
	"slices"
	"strings"

	"avatarhub/internal/model"
)

// SortOrder selects how cards are ordered before paging.
type SortOrder string

const (
	SortRecentlyCreated SortOrder = "recently-created"
	SortNameAsc         SortOrder = "name-asc"
	SortNameDesc        SortOrder = "name-desc"
)

// SortOption is one entry of the sort selector.
type SortOption struct {
	Value SortOrder
	Label string
}

// SortOptions lists the selector entries in display order.
func SortOptions() []SortOption {
	return []SortOption{
		{Value: SortRecentlyCreated, Label: "Recently Created"},
		{Value: SortNameAsc, Label: "Name (A-Z)"},
		{Value: SortNameDesc, Label: "Name (Z-A)"},
	}
}

// ParseSortOrder returns the matching order, or SortRecentlyCreated for unknown values.
func ParseSortOrder(v string) SortOrder {
	switch SortOrder(v) {
	case SortNameAsc, SortNameDesc:
		return SortOrder(v)
	default:
		return SortRecentlyCreated
	}
}

// Apply returns records ordered by s. Recently created keeps store order.
// The input slice is not modified.
func (s SortOrder) Apply(records []model.AvatarRecord) []model.AvatarRecord {
	out := slices.Clone(records)
	switch s {
	case SortNameAsc:
		slices.SortStableFunc(out, compareNames)
	case SortNameDesc:
		slices.SortStableFunc(out, func(a, b model.AvatarRecord) int {
			return compareNames(b, a)
		})
	}
	return out
}

func compareNames(a, b model.AvatarRecord) int {
	return strings.Compare(strings.ToLower(a.FullName()), strings.ToLower(b.FullName()))
}
