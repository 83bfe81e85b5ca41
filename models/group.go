package models

// Group is the tab a menu item lives under. Unlike Category there is no
// "none" state: every item belongs to exactly one group.
type Group string

const (
	GroupMainCourse Group = "Main Course"
	GroupDessert    Group = "Dessert"
	GroupAppetizer  Group = "Appetizer"
	GroupBeverage   Group = "Beverage"
	GroupComboMeal  Group = "Combo Meal"
)

// Groups lists the tabs in display order.
func Groups() []Group {
	return []Group{
		GroupMainCourse,
		GroupDessert,
		GroupAppetizer,
		GroupBeverage,
		GroupComboMeal,
	}
}

// ValidGroup reports whether g is one of the fixed tabs.
func ValidGroup(g Group) bool {
	for _, known := range Groups() {
		if g == known {
			return true
		}
	}
	return false
}
