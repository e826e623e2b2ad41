package bankexport

import (
	"slices"

	"github.com/etnz/positions/sheet"
)

const (
	// headerWindow is the number of leading rows scanned for the header.
	headerWindow = 10
	// fallbackHeader is the header row index assumed when the anchors are not found.
	fallbackHeader = 1
)

// LocateHeader returns the index of the header row of 'g'.
func LocateHeader(g sheet.Grid) int {
	i, _ := FindHeader(g)
	return i
}

// FindHeader returns the index of the first row among the first ten holding both the
// product name and the identifier labels. If there is none it returns the fallback index 1
// and false.
func FindHeader(g sheet.Grid) (int, bool) {
	for i := 0; i < min(headerWindow, g.Len()); i++ {
		labels := g.Labels(i)
		if slices.Contains(labels, ColName) && slices.Contains(labels, ColID) {
			return i, true
		}
	}
	return fallbackHeader, false
}
