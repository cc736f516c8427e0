package models

// FilterCriteria carries the optional search parameters for property
// listings. A nil field means no constraint on that dimension.
type FilterCriteria struct {
	City         *string
	PropertyType *string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	Bathrooms    *float64
	Query        *string
	Featured     *bool
}
