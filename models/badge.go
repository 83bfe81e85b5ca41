package models

// CategoryBadge describes how a category tag is rendered: the badge color
// classes and the icon name the frontend maps to its icon set. Presentation
// only; CategoryNone renders no badge at all.
type CategoryBadge struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var categoryBadges = map[Category]CategoryBadge{
	CategoryBestSeller:   {Color: "bg-yellow-500 text-white", Icon: "drumstick"},
	CategorySpecialty:    {Color: "bg-purple-500 text-white", Icon: "soup"},
	CategoryMostBought:   {Color: "bg-blue-500 text-white", Icon: "coffee"},
	CategoryNewArrival:   {Color: "bg-green-500 text-white", Icon: "drumstick"},
	CategoryLimitedOffer: {Color: "bg-orange-500 text-white", Icon: "coffee"},
	CategoryRecommended:  {Color: "bg-pink-500 text-white", Icon: "ice-cream"},
	CategoryComboMeal:    {Color: "bg-indigo-500 text-white", Icon: "drumstick"},
}

// BadgeFor returns the badge descriptor for a category. The second result is
// false for CategoryNone and for values outside the fixed enumeration.
func BadgeFor(c Category) (CategoryBadge, bool) {
	badge, ok := categoryBadges[c]
	return badge, ok
}
