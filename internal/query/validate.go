package query

import (
	"fmt"
	"strconv"

	"vitibrasil/scraper/internal/domain"
)

// Query is a validated request. Subcategory is nil when none was
// supplied, which is legal even for categories that support one.
type Query struct {
	Year        int
	Category    domain.CategoryID
	Subcategory *domain.SubcategoryID
}

// Validate checks raw parameters against the year bounds and the
// catalog. Checks run in order and stop at the first failure: year,
// category existence, subcategory applicability. Pure function; the
// catalog is never mutated.
func Validate(catalog *domain.Catalog, p Params) (Query, error) {
	year, err := strconv.Atoi(p.Year)
	if err != nil || year < domain.MinYear || year > domain.MaxYear {
		return Query{}, &ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("invalid year %q: must be an integer between %d and %d", p.Year, domain.MinYear, domain.MaxYear),
			kind:    ErrYearOutOfRange,
		}
	}

	category, ok := catalog.Get(domain.CategoryID(p.Category))
	if !ok {
		return Query{}, &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("invalid category %q: valid categories are %v", p.Category, catalog.CategoryIDs()),
			kind:    ErrUnknownCategory,
		}
	}

	if p.Subcategory == "" {
		return Query{Year: year, Category: category.ID}, nil
	}

	if !category.AcceptsSubcategory {
		return Query{}, &ValidationError{
			Field:   "subcategory",
			Message: fmt.Sprintf("category %q does not accept a subcategory", p.Category),
			kind:    ErrUnexpectedSubcategory,
		}
	}

	sub := domain.SubcategoryID(p.Subcategory)
	if !category.HasSubcategory(sub) {
		return Query{}, &ValidationError{
			Field:   "subcategory",
			Message: fmt.Sprintf("invalid subcategory %q for category %q: valid subcategories are %v", p.Subcategory, p.Category, category.SubcategoryIDs()),
			kind:    ErrUnknownSubcategory,
		}
	}

	return Query{Year: year, Category: category.ID, Subcategory: &sub}, nil
}
