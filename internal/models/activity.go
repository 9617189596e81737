package models

const (
	// ActivityStatusActive indicates the activity is open for participants.
	ActivityStatusActive = "active"
	// ActivityStatusCancelled indicates the creator called the activity off.
	ActivityStatusCancelled = "cancelled"
)

// Activity represents a social activity organized by a user. The creator
// is always the first participant.
type Activity struct {
	Record
	UserID          string   `json:"userId"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Location        string   `json:"location"`
	MaxParticipants int      `json:"maxParticipants,omitempty"`
	Participants    []string `json:"participants"`
	Status          string   `json:"status"`
}

// HasParticipant reports whether the given user is in the participant list.
func (a *Activity) HasParticipant(userID string) bool {
	for _, p := range a.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the participant cap, if any, has been reached.
func (a *Activity) IsFull() bool {
	return a.MaxParticipants > 0 && len(a.Participants) >= a.MaxParticipants
}
