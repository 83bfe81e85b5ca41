package models

// Category is the optional descriptive tag on a menu item. The dashboard
// always shows a value, so "no category" is represented by CategoryNone in
// the UI while the upstream API expects JSON null instead.
type Category string

const (
	CategoryNone         Category = "None"
	CategoryBestSeller   Category = "Best Seller"
	CategoryMostBought   Category = "Most Bought"
	CategoryNewArrival   Category = "New Arrival"
	CategoryLimitedOffer Category = "Limited Offer"
	CategoryRecommended  Category = "Recommended"
	CategoryComboMeal    Category = "Combo Meal"
	CategorySpecialty    Category = "Specialty"
)

// Categories lists every selectable value in dropdown order, CategoryNone first.
func Categories() []Category {
	return []Category{
		CategoryNone,
		CategoryBestSeller,
		CategoryMostBought,
		CategoryNewArrival,
		CategoryLimitedOffer,
		CategoryRecommended,
		CategoryComboMeal,
		CategorySpecialty,
	}
}

// ValidCategory reports whether c is one of the selectable values.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// WireCategory converts a UI category to its upstream representation.
// CategoryNone becomes nil; the string "None" must never reach the wire.
func WireCategory(c Category) *string {
	if c == CategoryNone {
		return nil
	}
	s := string(c)
	return &s
}

// DisplayCategory is the inverse of WireCategory: a null upstream category
// comes back as CategoryNone.
func DisplayCategory(wire *string) Category {
	if wire == nil {
		return CategoryNone
	}
	return Category(*wire)
}
