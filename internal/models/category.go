package models

import "github.com/agnivade/levenshtein"

// Category is one of a fixed, closed set of transaction classifications.
// The set is shared by the ledger and the budget tracker; there is no
// user-defined category management.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryRent          Category = "Rent"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategorySavings       Category = "Savings"
	CategoryOther         Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryRent,
	CategoryShopping,
	CategoryHealth,
	CategoryEducation,
	CategorySavings,
	CategoryOther,
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// SuggestCategory returns the closest valid category for an unknown
// input, or "" when nothing is within two edits. Used to build
// friendlier validation errors ("did you mean Food?").
func SuggestCategory(input string) Category {
	const maxDistance = 2

	best := Category("")
	bestDist := maxDistance + 1
	for _, c := range Categories {
		d := levenshtein.ComputeDistance(input, string(c))
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	if bestDist > maxDistance {
		return ""
	}
	return best
}
