package catalog

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a collator for display-order string comparison. Collators keep internal
// buffers, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

func sortDevices(devices []Device) {
	col := newCollator()
	slices.SortStableFunc(devices, func(a, b Device) int {
		if c := b.LatestAndroidVersion.Compare(a.LatestAndroidVersion); c != 0 {
			return c
		}
		if c := col.CompareString(a.Brand, b.Brand); c != 0 {
			return c
		}
		return col.CompareString(a.Name, b.Name)
	})
}

func sortByName(devices []Device) {
	col := newCollator()
	slices.SortStableFunc(devices, func(a, b Device) int {
		return col.CompareString(a.Name, b.Name)
	})
}
