package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"mealplanner-backend-go/internal/models"
)

const auditLogsCollection = "auditLogs"

// firestoreAuditRepository implements AuditRepository using Firestore.
type firestoreAuditRepository struct {
	client *firestore.Client
}

// NewFirestoreAuditRepository creates a new instance of firestoreAuditRepository.
func NewFirestoreAuditRepository(client *firestore.Client) AuditRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for AuditRepository.")
	}
	return &firestoreAuditRepository{client: client}
}

// Create appends a new audit log document. Log IDs are UUIDs rather than
// Firestore auto-IDs so entries stay addressable if they are ever exported
// out of Firestore.
func (r *firestoreAuditRepository) Create(ctx context.Context, logEntry models.AuditLog) error {
	logEntry.ID = uuid.NewString()
	docRef := r.client.Collection(auditLogsCollection).Doc(logEntry.ID)
	if _, err := docRef.Create(ctx, logEntry); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}
