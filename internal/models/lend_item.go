package models

const (
	// LendItemStatusAvailable indicates the item can be borrowed.
	LendItemStatusAvailable = "available"
	// LendItemStatusLent indicates the item is currently with a borrower.
	LendItemStatusLent = "lent"
)

// LendItem represents an item a user offers to lend to the community.
type LendItem struct {
	Record
	UserID       string `json:"userId"`
	ItemName     string `json:"itemName"`
	Description  string `json:"description"`
	Condition    string `json:"condition,omitempty"`
	Availability string `json:"availability,omitempty"`
	Status       string `json:"status"`
}
