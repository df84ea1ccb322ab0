package db

import "errors"

// ErrNotFound is returned by repositories when a requested document does not
// exist. Services translate it into their own sentinel errors.
var ErrNotFound = errors.New("document not found")

// ErrKeyOwnerMismatch is returned when a composite document key embeds an
// identity other than the acting user's. The write is rejected before it
// reaches the store.
var ErrKeyOwnerMismatch = errors.New("document key does not embed the acting user's ID")

// ErrVerifyMismatch is returned when a post-write read-back shows the stored
// owner differs from the acting user. The write is reported as failed even if
// the store accepted it.
var ErrVerifyMismatch = errors.New("post-write verification failed: stored owner mismatch")
