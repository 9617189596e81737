package models

const (
	// BorrowRequestStatusOpen indicates the request is waiting for a lender.
	BorrowRequestStatusOpen = "open"
	// BorrowRequestStatusFulfilled indicates a lender provided the item.
	BorrowRequestStatusFulfilled = "fulfilled"
)

// BorrowRequest represents a user asking to borrow an item from the community.
type BorrowRequest struct {
	Record
	UserID      string `json:"userId"`
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	Status      string `json:"status"`
}
