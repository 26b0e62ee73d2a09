package catalog

import (
	"slices"
	"strings"
)

// Filter keeps devices whose name, codename or brand contains query, ignoring case.
// The result is always a new slice.
func Filter(devices []Device, query string) []Device {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return slices.Clone(devices)
	}
	out := make([]Device, 0, len(devices))
	for _, d := range devices {
		if d.Matches(query) {
			out = append(out, d)
		}
	}
	return out
}

// Matches expects an already lower-cased query.
func (d Device) Matches(query string) bool {
	return strings.Contains(strings.ToLower(d.Name), query) ||
		strings.Contains(strings.ToLower(d.Codename), query) ||
		strings.Contains(strings.ToLower(d.Brand), query)
}

type BrandGroup struct {
	Brand   string
	Devices []Device
	// Open marks sections expanded on render, the brands that matched a search.
	Open bool
}

// GroupByBrand groups devices per brand, brands and the devices inside each brand ordered by
// name. When query is non-empty every group containing a match is opened.
func GroupByBrand(devices []Device, query string) []BrandGroup {
	var (
		index  = make(map[string]int)
		groups []BrandGroup
	)
	for _, d := range devices {
		i, ok := index[d.Brand]
		if !ok {
			i = len(groups)
			index[d.Brand] = i
			groups = append(groups, BrandGroup{Brand: d.Brand})
		}
		groups[i].Devices = append(groups[i].Devices, d)
	}

	open := strings.TrimSpace(query) != ""
	col := newCollator()
	slices.SortStableFunc(groups, func(a, b BrandGroup) int {
		return col.CompareString(a.Brand, b.Brand)
	})
	for i := range groups {
		sortByName(groups[i].Devices)
		groups[i].Open = open
	}
	return groups
}

// PartitionDeprecated splits devices into maintained and deprecated ones, keeping order.
func PartitionDeprecated(devices []Device) (active, deprecated []Device) {
	for _, d := range devices {
		if d.Deprecated {
			deprecated = append(deprecated, d)
		} else {
			active = append(active, d)
		}
	}
	return active, deprecated
}

func FindByCodename(devices []Device, codename string) (Device, bool) {
	for _, d := range devices {
		if d.Codename == codename {
			return d, true
		}
	}
	return Device{}, false
}
