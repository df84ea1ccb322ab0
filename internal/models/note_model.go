package models

import "time"

// Note represents a free-text note document in the notes collection, keyed by
// the composite key "{userId}_{date}". A second save for the same date updates
// the existing document rather than creating a duplicate.
type Note struct {
	ID        string    `json:"id" firestore:"-"`
	UserID    string    `json:"userId" firestore:"userId"`
	Date      string    `json:"date" firestore:"date"` // YYYY-MM-DD
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// NoteKey builds the composite document key for a user's note on a date.
func NoteKey(userID, date string) string {
	return userID + "_" + date
}
