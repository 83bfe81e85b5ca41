package models

// Announcement is a news entry shown on the announcements screen.
// Type is one of "update", "event" or "promotion"; Date is the display date
// in YYYY-MM-DD form as the upstream stores it.
type Announcement struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// AnnouncementTypes lists the selectable announcement types.
func AnnouncementTypes() []string {
	return []string{"update", "event", "promotion"}
}
