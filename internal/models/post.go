package models

// Post represents a short social update in the community feed.
type Post struct {
	Record
	UserID  string `json:"userId"`
	Content string `json:"content"`
	Likes   int    `json:"likes"`
}
