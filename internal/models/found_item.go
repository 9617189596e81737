package models

const (
	// FoundItemStatusUnclaimed indicates no owner has come forward yet.
	FoundItemStatusUnclaimed = "unclaimed"
	// FoundItemStatusClaimed indicates the item was returned to its owner.
	FoundItemStatusClaimed = "claimed"
)

// FoundItem represents an item a user found and is holding for its owner.
type FoundItem struct {
	Record
	UserID      string `json:"userId"`
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	ContactInfo string `json:"contactInfo,omitempty"`
	Status      string `json:"status"`
}
