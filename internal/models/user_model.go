package models

import "time"

// User represents a user profile in the users collection.
type User struct {
	ID        string    `json:"id" firestore:"-"` // Firebase Auth UID, used as the document ID
	Email     string    `json:"email" firestore:"email"`
	FirstName string    `json:"firstName,omitempty" firestore:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty" firestore:"lastName,omitempty"`
	Username  string    `json:"username,omitempty" firestore:"username,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
