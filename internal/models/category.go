package models

import "strings"

// Category is the gallery filter bucket a project falls into
type Category string

const (
	CategoryReact     Category = "react"
	CategoryJava      Category = "java"
	CategoryPython    Category = "python"
	CategoryFullstack Category = "fullstack"
	CategoryOther     Category = "other"

	// CategoryAll is only meaningful as a filter
	CategoryAll Category = "all"
)

// Categories lists the card categories in filter-button order
var Categories = []Category{
	CategoryReact,
	CategoryJava,
	CategoryPython,
	CategoryFullstack,
	CategoryOther,
}

// ParseFilter normalizes a filter value. Empty input means all.
func ParseFilter(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryAll
	}
	return Category(s)
}

// Matches reports whether a card in category c is visible under filter f
func (c Category) Matches(f Category) bool {
	if f == CategoryAll {
		return true
	}
	card := c
	if card == "" {
		card = CategoryOther
	}
	return strings.EqualFold(string(card), string(f))
}
