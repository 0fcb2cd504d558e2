package domain

import (
	"fmt"
	"strings"
)

// Category is one of the mutually exclusive display modes.
type Category string

const (
	CategoryTrending   Category = "trending"
	CategoryEssentials Category = "essentials"
	CategoryRoutes     Category = "routes"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryTrending, CategoryEssentials, CategoryRoutes}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryTrending, CategoryEssentials, CategoryRoutes:
		return true
	}
	return false
}

// ParseCategory validates a category name received from outside the core.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("parse category: unknown category %q", s)
	}
	return c, nil
}
