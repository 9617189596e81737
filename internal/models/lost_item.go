package models

const (
	// LostItemStatusLost indicates the item is still missing.
	LostItemStatusLost = "lost"
	// LostItemStatusFound indicates the owner recovered the item.
	LostItemStatusFound = "found"
)

// LostItem represents an item a user reported as lost on campus.
type LostItem struct {
	Record
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Category    string `json:"category,omitempty"`
	Image       string `json:"image,omitempty"`
	Status      string `json:"status"`
}
