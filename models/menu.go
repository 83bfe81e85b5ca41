package models

// MenuItem is a catalog entry as the dashboard displays it. The ID is
// assigned by the upstream API on creation and immutable afterwards.
// Category holds the display value (CategoryNone when the upstream sent null).
type MenuItem struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Group       Group    `json:"group"`
}

// MenuDraft carries the editable fields of the edit dialog before they are
// validated. Price stays a string because it comes straight from a text
// input; validation parses it.
type MenuDraft struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Group       Group    `json:"group"`
}
