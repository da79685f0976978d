package pp

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// EnglishJoin joins items as in English, with an Oxford comma for three or more items.
// An empty list gives "(none)".
func EnglishJoin(items []string) string {
	switch l := len(items); l {
	case 0:
		return "(none)"
	case 1:
		return items[0]
	case 2: //nolint:mnd
		return fmt.Sprintf("%s and %s", items[0], items[1])
	default:
		return strings.Join(items[:l-1], ", ") + ", and " + items[l-1]
	}
}

// EnglishJoinMap describes each item with f and then calls [EnglishJoin].
func EnglishJoinMap[T any](f func(t T) string, items []T) string {
	descriptions := make([]string, 0, len(items))
	for _, item := range items {
		descriptions = append(descriptions, f(item))
	}
	return EnglishJoin(descriptions)
}

func sortByLengthDesc(items []string) []string {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b string) int { return cmp.Compare(len(b), len(a)) })
	return sorted
}
