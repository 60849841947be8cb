// Package addons tracks the optional services a guest attaches to a booking
// and their contribution to the total. Selection state lives only in the
// active booking session.
package addons

import "lucilla/models"

// Catalog indexes the configured add-ons by id.
type Catalog map[string]models.ServiceAddon

func NewCatalog(list []models.ServiceAddon) Catalog {
	c := make(Catalog, len(list))
	for _, a := range list {
		c[a.ID] = a
	}
	return c
}

// Selection maps addon id to selected quantity. Absent means not selected.
type Selection map[string]int

// Toggle adjusts the quantity for an addon by delta (callers pass ±1) and
// returns the new quantity. Quantities never go below zero.
func (s Selection) Toggle(addonID string, delta int) int {
	q := s[addonID] + delta
	if q < 0 {
		q = 0
	}
	if q == 0 {
		delete(s, addonID)
	} else {
		s[addonID] = q
	}
	return q
}

// Total sums quantity × unit price over the selection. Included add-ons are
// listed with the property but never cost anything, whatever their selected
// quantity. Unknown ids are ignored.
func Total(sel Selection, catalog Catalog) float64 {
	var total float64
	for id, qty := range sel {
		addon, ok := catalog[id]
		if !ok || addon.Included || qty <= 0 {
			continue
		}
		total += float64(qty) * addon.UnitPrice
	}
	return total
}
