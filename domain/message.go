package domain

import "time"

// Message is an immutable chat event. Its ID is unique only within the
// owning member's list (len(messages)+1 at creation time).
type Message struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
