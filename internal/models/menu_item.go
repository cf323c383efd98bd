// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package models

// MenuItem is a single dish or drink on the menu.
//
// Name and Description are stored HTML-escaped; validation normalizes them
// before they ever reach the store.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Equal reports whether two items carry identical field values.
func (m MenuItem) Equal(other MenuItem) bool {
	return m.ID == other.ID &&
		m.Name == other.Name &&
		m.Category == other.Category &&
		m.Price == other.Price &&
		m.Description == other.Description
}

// Collection is the ordered menu. Order is insertion order.
type Collection []MenuItem

// MaxID returns the highest id in the collection, or 0 when it is empty.
func (c Collection) MaxID() int {
	maxID := 0
	for _, item := range c {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID
}

// IndexOf returns the position of the item with the given id, or -1.
func (c Collection) IndexOf(id int) int {
	for i, item := range c {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the item with the given id.
func (c Collection) Find(id int) (MenuItem, bool) {
	if i := c.IndexOf(id); i >= 0 {
		return c[i], true
	}
	return MenuItem{}, false
}
